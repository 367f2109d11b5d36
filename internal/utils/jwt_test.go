package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var testIdentity = models.Claims{UserID: "6c1d4a8b-1f0e-4b7e-8a2c-9d3e5f7a1b2c", Role: models.RoleManager}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"

	token, err := GenerateJWTToken(issuer, testIdentity, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("could not cast claims to TokenClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != testIdentity.UserID {
		t.Errorf("expected subject %s, got %s", testIdentity.UserID, claims.Subject)
	}
	if claims.Role != models.RoleManager {
		t.Errorf("expected role manager, got %s", claims.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Claims
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testIdentity, time.Hour, "key"},
		{"zero duration", "iss", testIdentity, 0, "key"},
		{"empty key", "iss", testIdentity, time.Hour, ""},
		{"empty user id", "iss", models.Claims{Role: models.RoleStudent}, time.Hour, "key"},
		{"unknown role", "iss", models.Claims{UserID: "u", Role: "admin"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, testIdentity, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	identity, err := parsedToken.Identity()
	if err != nil {
		t.Fatalf("Identity error: %v", err)
	}
	if identity != testIdentity {
		t.Errorf("expected identity %+v, got %+v", testIdentity, identity)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testIdentity, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testIdentity, -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", testIdentity, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   testIdentity.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: models.RoleManager,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected HS512 token to be rejected, got nil")
	}
}

func TestValidateAndParseJWTToken_UnknownRole(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   testIdentity.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "admin",
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "iss")
	if !errors.Is(err, models.ErrMalformedClaims) {
		t.Errorf("expected ErrMalformedClaims, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "iss", Subject: testIdentity.UserID},
		Role:             models.RoleStudent,
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected token without exp to be rejected, got nil")
	}
}
