package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-backend/config"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authFixture struct {
	db     *gorm.DB
	uc     AuthUsecase
	jwt    *jwt.JWTService
	tokens *service.TokenStore
	user   *entity.User
}

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user := &entity.User{RoleID: entity.RoleIDAdmin, Username: "admin", Password: string(hash), IsActive: true}
	mustCreate(t, db, user)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
	tokens := service.NewTokenStore(newRedisClient(t))

	uc := NewAuthUsecase(db, log, repository.NewUserRepository(), jwtService, tokens, newTestAuditService(log))
	return &authFixture{db: db, uc: uc, jwt: jwtService, tokens: tokens, user: user}
}

func (f *authFixture) claims(t *testing.T, token string) *jwt.Claims {
	t.Helper()
	claims, err := f.jwt.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	return claims
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in = %d", resp.ExpiresIn)
	}

	access := f.claims(t, resp.AccessToken)
	if access.TokenType != jwt.AccessToken || access.RoleID != entity.RoleIDAdmin {
		t.Errorf("access claims = %+v", access)
	}
	active, err := f.tokens.IsActive(ctx, jwt.AccessToken, f.user.ID, access.TokenID)
	if err != nil || !active {
		t.Errorf("access token not registered: active=%v err=%v", active, err)
	}

	var logins int64
	f.db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionUserLogin).Count(&logins)
	if logins != 1 {
		t.Errorf("login audit rows = %d, want 1", logins)
	}
}

func TestLogin_Rejections(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, err := f.uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := f.uc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "s3cret!"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v", err)
	}

	if err := f.db.Model(f.user).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := f.uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret!"}); !errors.Is(err, ErrUserInactive) {
		t.Errorf("inactive user err = %v", err)
	}
}

func TestRefreshToken_Rotates(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	first, err := f.uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	second, err := f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	_, err = f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	if !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("replayed refresh err = %v, want ErrTokenRevoked", err)
	}

	_, err = f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: second.AccessToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token as refresh err = %v, want ErrInvalidToken", err)
	}
}

func TestLogout_RevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	access := f.claims(t, resp.AccessToken)

	if err := f.uc.Logout(ctx, f.user.ID, access.TokenID, &dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("logout: %v", err)
	}

	active, err := f.tokens.IsActive(ctx, jwt.AccessToken, f.user.ID, access.TokenID)
	if err != nil || active {
		t.Errorf("access token still active: %v %v", active, err)
	}
	if _, err := f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("refresh after logout err = %v, want ErrTokenRevoked", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	f := newAuthFixture(t)

	got, err := f.uc.GetCurrentUser(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if got.Username != "admin" || got.Role != entity.RoleAdmin {
		t.Errorf("got %+v", got)
	}

	if _, err := f.uc.GetCurrentUser(context.Background(), 999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
