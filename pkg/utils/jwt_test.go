package utils

import (
	"testing"
	"time"

	"sareeMarket/domain"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := domain.User{ID: "u1", Name: "Asha", Mobile: "9999999999", IsAdmin: true}

	token, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if claims.UserID != "u1" || claims.Name != "Asha" || claims.Mobile != "9999999999" || !claims.IsAdmin {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(domain.User{ID: "u1"}, "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(domain.User{ID: "u1"}, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	if _, err := ParseJWT("not-a-token", "secret"); err == nil {
		t.Fatal("garbage token verified")
	}
}
