package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "farmer@example.com", "member")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "farmer@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "member" {
		t.Errorf("Role = %q, want member", claims.Role)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-one", time.Hour, 24*time.Hour)
	other := NewJWTManager("secret-two", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "farmer@example.com", "member")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("token validated with the wrong secret")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "farmer@example.com", "member")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error: %v", err)
	}

	got, err := manager.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error: %v", err)
	}
	if got != userID {
		t.Errorf("user ID = %v, want %v", got, userID)
	}
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	if _, err := manager.ValidateRefreshToken("not-a-token"); err == nil {
		t.Error("garbage refresh token validated")
	}
}
