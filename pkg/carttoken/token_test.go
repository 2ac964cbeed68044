package carttoken

import (
	"testing"
	"time"

	"github.com/jdrosales/playmerch-backend/pkg/config"
)

func testTokenConfig() config.CartTokenConfig {
	return config.CartTokenConfig{
		Secret:  "unit-test-secret",
		Issuer:  "playmerch",
		TTLDays: 30,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testTokenConfig()
	now := time.Now()

	token, cartID, err := Mint(cfg, now)
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	if token == "" || cartID == "" {
		t.Fatalf("Mint returned empty token or cart id")
	}

	claims, err := Parse(cfg, token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.CartID != cartID {
		t.Fatalf("expected cart id %q, got %q", cartID, claims.CartID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %q, got %q", cfg.Issuer, claims.Issuer)
	}
}

func TestMintForPreservesCartID(t *testing.T) {
	cfg := testTokenConfig()

	token, cartID, err := MintFor(cfg, time.Now(), "cart-123")
	if err != nil {
		t.Fatalf("MintFor returned error: %v", err)
	}
	if cartID != "cart-123" {
		t.Fatalf("expected cart id cart-123, got %q", cartID)
	}

	claims, err := Parse(cfg, token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.CartID != "cart-123" {
		t.Fatalf("expected cart id cart-123, got %q", claims.CartID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testTokenConfig()

	token, _, err := Mint(cfg, time.Now())
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}

	other := cfg
	other.Secret = "a-different-secret"
	if _, err := Parse(other, token); err == nil {
		t.Fatalf("expected error for token signed with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testTokenConfig()

	token, _, err := Mint(cfg, time.Now().Add(-31*24*time.Hour))
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}

	if _, err := Parse(cfg, token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestMintValidation(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Secret = ""
	if _, _, err := Mint(cfg, time.Now()); err == nil {
		t.Fatalf("expected error when secret is empty")
	}

	cfg = testTokenConfig()
	if _, _, err := MintFor(cfg, time.Now(), ""); err == nil {
		t.Fatalf("expected error when cart id is empty")
	}
}
