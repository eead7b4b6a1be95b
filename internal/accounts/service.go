package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ramosvitor/tibiaset-backend/pkg/auth"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/security"
	"github.com/ramosvitor/tibiaset-backend/pkg/supabase"
)

const usersTable = "users"

// Service owns registration, login, and self-service profile operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	ResolveIdentity(ctx context.Context, email string) (*Identity, error)
	UpdateSelf(ctx context.Context, id Identity, req UpdateRequest) error
	DeleteSelf(ctx context.Context, id Identity) error
}

type gateway interface {
	List(ctx context.Context, table string, filters *supabase.Filters, dest any) error
	Insert(ctx context.Context, table string, record any) error
	Patch(ctx context.Context, table, rawFilter string, partial any) error
	Delete(ctx context.Context, table, rawFilter string) error
}

type service struct {
	gw     gateway
	jwtCfg config.JWTConfig
}

func NewService(gw gateway, jwtCfg config.JWTConfig) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	return &service{gw: gw, jwtCfg: jwtCfg}, nil
}

// Register rejects an occupied email, hashes the password, and inserts the
// row. The pre-check is best effort: a failed check behaves as "not taken"
// and the users.email unique index backstops the race.
func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	var existing []User
	if err := s.gw.List(ctx, usersTable, supabase.NewFilters().Eq("email", req.Email), &existing); err == nil && len(existing) > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	record := map[string]any{
		"username":      req.Username,
		"email":         req.Email,
		"password_hash": hash,
	}
	if err := s.gw.Insert(ctx, usersTable, record); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "register user")
	}
	return nil
}

// Login verifies the credentials and mints a token with subject = email.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeCredentials, "user not found")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeCredentials, "incorrect password")
	}

	token, err := auth.MintAccessToken(s.jwtCfg, time.Now().UTC(), user.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ResolveIdentity re-fetches the user row for a verified token subject.
// A subject whose row no longer exists fails the same way a bad token does.
func (s *service) ResolveIdentity(ctx context.Context, email string) (*Identity, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials")
	}
	return &Identity{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// UpdateSelf applies the supplied profile fields; a password is re-hashed
// before storage. Supplying no recognized field is a validation error.
func (s *service) UpdateSelf(ctx context.Context, id Identity, req UpdateRequest) error {
	update := map[string]any{}
	if strings.TrimSpace(req.Username) != "" {
		update["username"] = req.Username
	}
	if strings.TrimSpace(req.Email) != "" {
		update["email"] = req.Email
	}
	if req.Password != "" {
		hash, err := security.HashPassword(req.Password)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		update["password_hash"] = hash
	}

	if len(update) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.gw.Patch(ctx, usersTable, supabase.RawFilter("id", "eq", id.ID), update); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update user")
	}
	return nil
}

// DeleteSelf removes the caller's row. Owned builds cascade at the store.
func (s *service) DeleteSelf(ctx context.Context, id Identity) error {
	if err := s.gw.Delete(ctx, usersTable, supabase.RawFilter("id", "eq", id.ID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete user")
	}
	return nil
}

func (s *service) findByEmail(ctx context.Context, email string) (*User, error) {
	var users []User
	if err := s.gw.List(ctx, usersTable, supabase.NewFilters().Eq("email", email), &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no user with email %s", email)
	}
	// At most one row is expected; take the first if the store has more.
	return &users[0], nil
}
