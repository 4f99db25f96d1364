package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-backend/config"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type authFixture struct {
	jwt    *jwt.JWTService
	tokens *service.TokenStore
	chain  http.Handler
}

// newAuthFixture mounts Authenticate and RequireRole(roles...) in front of a
// handler that echoes the caller's user id header.
func newAuthFixture(t *testing.T, roles ...int) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	tokens := service.NewTokenStore(client)

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			t.Error("identity missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	})

	var h http.Handler = final
	if len(roles) > 0 {
		h = RequireRole(roles...)(h)
	}
	return &authFixture{
		jwt:    jwtService,
		tokens: tokens,
		chain:  NewAuthMiddleware(jwtService, tokens).Authenticate(h),
	}
}

// issue signs a token pair and registers both ids in the token store.
func (f *authFixture) issue(t *testing.T, userID, roleID int) (access, refresh string) {
	t.Helper()
	sub := jwt.Subject{UserID: userID, Username: "user", RoleID: roleID}
	access, accessID, err := f.jwt.GenerateAccessToken(sub)
	if err != nil {
		t.Fatal(err)
	}
	refresh, refreshID, err := f.jwt.GenerateRefreshToken(sub)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.tokens.SavePair(context.Background(), userID, accessID, time.Minute, refreshID, time.Hour); err != nil {
		t.Fatal(err)
	}
	return access, refresh
}

func (f *authFixture) do(header string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	f.chain.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthenticateAcceptsActiveAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	access, _ := f.issue(t, 1, entity.RoleIDAdmin)

	if code := f.do("Bearer " + access); code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", code)
	}
	if code := f.do("bearer " + access); code != http.StatusNoContent {
		t.Fatalf("scheme should be case-insensitive, got %d", code)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	f := newAuthFixture(t)
	_, refresh := f.issue(t, 1, entity.RoleIDAdmin)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"garbage token":  "Bearer not-a-jwt",
		"refresh token":  "Bearer " + refresh,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			if code := f.do(header); code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", code)
			}
		})
	}
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	f := newAuthFixture(t)
	access, _ := f.issue(t, 4, entity.RoleIDStaff)

	if err := f.tokens.RevokeAll(context.Background(), 4); err != nil {
		t.Fatal(err)
	}
	if code := f.do("Bearer " + access); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestRequireRole(t *testing.T) {
	f := newAuthFixture(t, entity.RoleIDAdmin, entity.RoleIDDoctor)

	doctor, _ := f.issue(t, 2, entity.RoleIDDoctor)
	staff, _ := f.issue(t, 3, entity.RoleIDStaff)

	if code := f.do("Bearer " + doctor); code != http.StatusNoContent {
		t.Errorf("doctor: status = %d, want 204", code)
	}
	if code := f.do("Bearer " + staff); code != http.StatusForbidden {
		t.Errorf("staff: status = %d, want 403", code)
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	h := RequireRole(entity.RoleIDAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
