package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be between 1 and 65535"},
		{name: "invalid IP address", input: "invalid.host:8080", errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://flags",
		"-config", "/etc/courses.json",
		"-env", "test",
		"-log-level", "warn",
		"-token-sign-key", "flag-key",
		"-token-issuer", "flag-issuer",
		"-token-duration", "45m",
		"-request-timeout", "10s",
		"-shutdown-timeout", "3s",
		"-query-timeout", "2s",
		"-page-size", "5",
		"-public-courses",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/courses.json", cfg.JSONFilePath)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, 5, cfg.App.PageSize)
	assert.True(t, cfg.App.PublicCourses)
}

func TestParseFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nope"})
	require.Error(t, err)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}
