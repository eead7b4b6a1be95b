package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ramosvitor/tibiaset-backend/pkg/auth"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/security"
	"github.com/ramosvitor/tibiaset-backend/pkg/supabase"
)

var testJWT = config.JWTConfig{Secret: "secret", Issuer: "tibiaset", ExpirationMinutes: 30}

type stubGateway struct {
	listRows  string
	listErr   error
	insertErr error
	patchErr  error
	deleteErr error

	inserted  []map[string]any
	patched   map[string]any
	rawFilter string
}

func (s *stubGateway) List(_ context.Context, _ string, _ *supabase.Filters, dest any) error {
	if s.listErr != nil {
		return s.listErr
	}
	return json.Unmarshal([]byte(s.listRows), dest)
}

func (s *stubGateway) Insert(_ context.Context, _ string, record any) error {
	if m, ok := record.(map[string]any); ok {
		s.inserted = append(s.inserted, m)
	}
	return s.insertErr
}

func (s *stubGateway) Patch(_ context.Context, _ string, rawFilter string, partial any) error {
	s.rawFilter = rawFilter
	if m, ok := partial.(map[string]any); ok {
		s.patched = m
	}
	return s.patchErr
}

func (s *stubGateway) Delete(_ context.Context, _ string, rawFilter string) error {
	s.rawFilter = rawFilter
	return s.deleteErr
}

func userRow(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	row, err := json.Marshal([]User{{ID: 7, Username: "alice", Email: "a@x.com", PasswordHash: hash}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(row)
}

func TestRegisterHappyPath(t *testing.T) {
	gw := &stubGateway{listRows: `[]`}
	svc, err := NewService(gw, testJWT)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	err = svc.Register(context.Background(), RegisterRequest{Username: "alice", Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(gw.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(gw.inserted))
	}
	record := gw.inserted[0]
	if record["email"] != "a@x.com" || record["username"] != "alice" {
		t.Fatalf("unexpected record %v", record)
	}
	hash, _ := record["password_hash"].(string)
	if hash == "" || hash == "pw1" {
		t.Fatal("password must be stored hashed")
	}
	ok, err := security.VerifyPassword("pw1", hash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	gw := &stubGateway{listRows: userRow(t, "pw1")}
	svc, _ := NewService(gw, testJWT)

	err := svc.Register(context.Background(), RegisterRequest{Username: "bob", Email: "a@x.com", Password: "pw2"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(gw.inserted) != 0 {
		t.Fatal("conflict must not insert")
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	gw := &stubGateway{listRows: `[]`, insertErr: errors.New("boom")}
	svc, _ := NewService(gw, testJWT)

	err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Email: "a@x.com", Password: "pw1"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	gw := &stubGateway{listRows: userRow(t, "pw1")}
	svc, _ := NewService(gw, testJWT)

	resp, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", resp.TokenType)
	}

	subject, err := auth.ParseAccessToken(testJWT, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if subject != "a@x.com" {
		t.Fatalf("expected subject a@x.com, got %s", subject)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	gw := &stubGateway{listRows: userRow(t, "pw1")}
	svc, _ := NewService(gw, testJWT)

	_, err := svc.Login(context.Background(), "a@x.com", "wrong")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeCredentials {
		t.Fatalf("expected credentials error, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	gw := &stubGateway{listRows: `[]`}
	svc, _ := NewService(gw, testJWT)

	_, err := svc.Login(context.Background(), "nobody@x.com", "pw")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeCredentials {
		t.Fatalf("expected credentials error, got %v", err)
	}
}

func TestResolveIdentity(t *testing.T) {
	gw := &stubGateway{listRows: userRow(t, "pw1")}
	svc, _ := NewService(gw, testJWT)

	id, err := svc.ResolveIdentity(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("resolve identity: %v", err)
	}
	if id.ID != 7 || id.Email != "a@x.com" || id.Username != "alice" {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestResolveIdentityMissingRow(t *testing.T) {
	gw := &stubGateway{listRows: `[]`}
	svc, _ := NewService(gw, testJWT)

	_, err := svc.ResolveIdentity(context.Background(), "gone@x.com")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUpdateSelfRehashesPassword(t *testing.T) {
	gw := &stubGateway{}
	svc, _ := NewService(gw, testJWT)
	identity := Identity{ID: 7, Email: "a@x.com"}

	err := svc.UpdateSelf(context.Background(), identity, UpdateRequest{Username: "alice2", Password: "newpw"})
	if err != nil {
		t.Fatalf("update self: %v", err)
	}

	if gw.rawFilter != "id=eq.7" {
		t.Fatalf("unexpected filter %q", gw.rawFilter)
	}
	if gw.patched["username"] != "alice2" {
		t.Fatalf("unexpected patch %v", gw.patched)
	}
	hash, _ := gw.patched["password_hash"].(string)
	if ok, err := security.VerifyPassword("newpw", hash); err != nil || !ok {
		t.Fatalf("expected re-hashed password, ok=%v err=%v", ok, err)
	}
}

func TestUpdateSelfNoFields(t *testing.T) {
	gw := &stubGateway{}
	svc, _ := NewService(gw, testJWT)

	err := svc.UpdateSelf(context.Background(), Identity{ID: 7}, UpdateRequest{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteSelfScopesFilter(t *testing.T) {
	gw := &stubGateway{}
	svc, _ := NewService(gw, testJWT)

	if err := svc.DeleteSelf(context.Background(), Identity{ID: 9}); err != nil {
		t.Fatalf("delete self: %v", err)
	}
	if gw.rawFilter != "id=eq.9" {
		t.Fatalf("unexpected filter %q", gw.rawFilter)
	}
}

func TestDeleteSelfStoreFailure(t *testing.T) {
	gw := &stubGateway{deleteErr: errors.New("boom")}
	svc, _ := NewService(gw, testJWT)

	err := svc.DeleteSelf(context.Background(), Identity{ID: 9})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}
