package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHash_Format(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=19456,t=2,p=1$") {
		t.Fatalf("unexpected encoding prefix: %q", encoded)
	}
	if strings.Contains(encoded, "secret1") {
		t.Fatalf("encoded hash must not contain the plaintext")
	}
}

func TestHash_SaltedAndBothVerify(t *testing.T) {
	h := NewPasswordHasher()

	h1, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected two hashes of the same password to differ")
	}

	for _, encoded := range []string{h1, h2} {
		ok, err := h.Verify("secret1", encoded)
		if err != nil {
			t.Fatalf("Verify error: %v", err)
		}
		if !ok {
			t.Fatalf("expected %q to verify", encoded)
		}
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("secret2", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatalf("expected wrong password to be rejected")
	}
}

func TestVerify_UsesEncodedParameters(t *testing.T) {
	weak := &argon2idHasher{argonTime: 1, argonMemory: 8 * 1024, argonThreads: 2, argonKeyLen: 16, saltLen: 8}

	encoded, err := weak.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := NewPasswordHasher().Verify("secret1", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected hash with foreign parameters to verify")
	}
}

func TestVerify_MalformedEncodings(t *testing.T) {
	h := NewPasswordHasher()

	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"empty", "", ErrInvalidHash},
		{"plaintext", "secret1", ErrInvalidHash},
		{"wrong algorithm", "$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$a2V5", ErrInvalidHash},
		{"bad version field", "$argon2id$version$m=19456,t=2,p=1$c2FsdA$a2V5", ErrInvalidHash},
		{"old version", "$argon2id$v=16$m=19456,t=2,p=1$c2FsdA$a2V5", ErrIncompatibleVersion},
		{"bad params", "$argon2id$v=19$m=x,t=2,p=1$c2FsdA$a2V5", ErrInvalidHash},
		{"zero params", "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$a2V5", ErrInvalidHash},
		{"bad salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!$a2V5", ErrInvalidHash},
		{"empty key", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("secret1", tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Verify error = %v, want %v", err, tt.wantErr)
			}
			if ok {
				t.Fatalf("malformed hash must not verify")
			}
		})
	}
}
