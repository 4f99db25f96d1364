package jwt

import (
	"testing"
	"time"

	"hospital-backend/config"
)

func newService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret")
	sub := Subject{UserID: 7, Username: "drhouse", RoleID: 2}

	token, tokenID, err := svc.GenerateAccessToken(sub)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "drhouse" || claims.RoleID != 2 {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id mismatch")
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, err := newService("one").GenerateRefreshToken(Subject{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := newService("two").ValidateToken(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := newService("secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken(Subject{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected expiry error")
	}
}
