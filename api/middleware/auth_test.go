package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ramosvitor/tibiaset-backend/internal/accounts"
	pkgAuth "github.com/ramosvitor/tibiaset-backend/pkg/auth"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
)

type stubAccountService struct {
	identity   *accounts.Identity
	err        error
	gotSubject string
}

func (s *stubAccountService) Register(context.Context, accounts.RegisterRequest) error {
	return nil
}

func (s *stubAccountService) Login(context.Context, string, string) (*accounts.LoginResponse, error) {
	return nil, nil
}

func (s *stubAccountService) ResolveIdentity(_ context.Context, email string) (*accounts.Identity, error) {
	s.gotSubject = email
	return s.identity, s.err
}

func (s *stubAccountService) UpdateSelf(context.Context, accounts.Identity, accounts.UpdateRequest) error {
	return nil
}

func (s *stubAccountService) DeleteSelf(context.Context, accounts.Identity) error {
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "tibiaset", ExpirationMinutes: 5}
}

func TestAuthSeedsIdentity(t *testing.T) {
	cfg := testJWTConfig()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), "a@x.com")
	if err != nil {
		t.Fatalf("MintAccessToken() error = %v", err)
	}

	svc := &stubAccountService{identity: &accounts.Identity{ID: 7, Email: "a@x.com"}}

	var seen accounts.Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, ok = IdentityFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(cfg, svc, nil)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !ok || seen.ID != 7 || seen.Email != "a@x.com" {
		t.Fatalf("identity = %+v (present=%v)", seen, ok)
	}
	if svc.gotSubject != "a@x.com" {
		t.Fatalf("resolved subject = %q, want a@x.com", svc.gotSubject)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	Auth(testJWTConfig(), &stubAccountService{}, nil)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthGarbageToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	Auth(testJWTConfig(), &stubAccountService{}, nil)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now().Add(-time.Hour), "a@x.com")
	if err != nil {
		t.Fatalf("MintAccessToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(cfg, &stubAccountService{}, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthUnmatchedSubject(t *testing.T) {
	cfg := testJWTConfig()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), "gone@x.com")
	if err != nil {
		t.Fatalf("MintAccessToken() error = %v", err)
	}

	svc := &stubAccountService{
		err: pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"),
	}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(cfg, svc, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
