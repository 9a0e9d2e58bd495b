package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/logixport/logixport-backend/pkg/config"
	"github.com/logixport/logixport-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "logixport",
		ExpirationMinutes: 60,
		RememberMeDays:    7,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		UserID: 42,
		Role:   enums.RoleAdmin,
		Email:  "admin@logixport.mx",
	}, 0)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	id, err := claims.SubjectID()
	if err != nil {
		t.Fatalf("subject id: %v", err)
	}
	if id != 42 {
		t.Fatalf("subject = %d, want 42", id)
	}
	if claims.Role != enums.RoleAdmin {
		t.Fatalf("role = %s, want admin", claims.Role)
	}
	if claims.Email != "admin@logixport.mx" {
		t.Fatalf("email = %s", claims.Email)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now().UTC().Add(-2 * time.Hour)

	token, err := MintAccessToken(cfg, issued, AccessTokenPayload{
		UserID: 7,
		Role:   enums.RoleUser,
		Email:  "user@logixport.mx",
	}, time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now().UTC(), AccessTokenPayload{
		UserID: 7,
		Role:   enums.RoleUser,
		Email:  "user@logixport.mx",
	}, 0)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	otherSecret := cfg
	otherSecret.Secret = "different-secret"
	if _, err := ParseAccessToken(otherSecret, token); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}

	parts := strings.Split(token, ".")
	mangled := parts[0] + "." + parts[1] + ".AAAA"
	if _, err := ParseAccessToken(cfg, mangled); err == nil {
		t.Fatalf("expected mangled signature to be rejected")
	}
}

func TestMintRejectsInvalidPayloads(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	if _, err := MintAccessToken(cfg, now, AccessTokenPayload{Role: enums.RoleUser}, 0); err == nil {
		t.Fatalf("expected error for missing user id")
	}
	if _, err := MintAccessToken(cfg, now, AccessTokenPayload{UserID: 1, Role: enums.Role("root")}, 0); err == nil {
		t.Fatalf("expected error for unknown role")
	}

	noSecret := cfg
	noSecret.Secret = ""
	if _, err := MintAccessToken(noSecret, now, AccessTokenPayload{UserID: 1, Role: enums.RoleUser}, 0); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestRememberMeTTLExtendsExpiry(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		UserID: 9,
		Role:   enums.RoleUser,
		Email:  "user@logixport.mx",
	}, cfg.RememberMeTTL())
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := now.Add(7 * 24 * time.Hour)
	if got := claims.ExpiresAt.Time; got.Sub(want) > time.Second || want.Sub(got) > time.Second {
		t.Fatalf("expiry = %s, want ~%s", got, want)
	}
}
