package builds

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ramosvitor/tibiaset-backend/internal/accounts"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/supabase"
)

const buildsTable = "builds"

// Service owns CRUD over user-owned builds. Every operation is scoped to the
// caller's identity; a foreign build is indistinguishable from an absent one.
type Service interface {
	Create(ctx context.Context, id accounts.Identity, req CreateRequest) (string, error)
	ListMine(ctx context.Context, id accounts.Identity) ([]Build, error)
	Get(ctx context.Context, id accounts.Identity, buildID string) (*Build, error)
	Delete(ctx context.Context, id accounts.Identity, buildID string) error
}

type gateway interface {
	List(ctx context.Context, table string, filters *supabase.Filters, dest any) error
	Insert(ctx context.Context, table string, record any) error
	Delete(ctx context.Context, table, rawFilter string) error
}

type service struct {
	gw gateway
}

func NewService(gw gateway) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	return &service{gw: gw}, nil
}

// Create stores the build under a freshly generated token identifier.
// Collisions are not checked; the probability is negligible, not guaranteed.
func (s *service) Create(ctx context.Context, id accounts.Identity, req CreateRequest) (string, error) {
	buildID := uuid.NewString()
	record := map[string]any{
		"id":               buildID,
		"user_id":          id.ID,
		"items":            req.Items,
		"imbuements":       req.Imbuements,
		"gems":             req.Gems,
		"monster_id":       req.MonsterID,
		"wheel_of_destiny": req.WheelOfDestiny,
		"total_attributes": req.TotalAttributes,
	}

	if err := s.gw.Insert(ctx, buildsTable, record); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create build")
	}
	return buildID, nil
}

func (s *service) ListMine(ctx context.Context, id accounts.Identity) ([]Build, error) {
	list := []Build{}
	filters := supabase.NewFilters().Eq("user_id", id.ID)
	if err := s.gw.List(ctx, buildsTable, filters, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get returns the build only when it exists and belongs to the caller.
func (s *service) Get(ctx context.Context, id accounts.Identity, buildID string) (*Build, error) {
	list := []Build{}
	filters := supabase.NewFilters().Eq("id", buildID).Eq("user_id", id.ID)
	if err := s.gw.List(ctx, buildsTable, filters, &list); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "build not found")
	}
	if len(list) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "build not found")
	}
	return &list[0], nil
}

// Delete is scoped by id and owner; a filter that matches nothing still
// succeeds downstream, so deleting a foreign build id is a silent no-op.
func (s *service) Delete(ctx context.Context, id accounts.Identity, buildID string) error {
	rawFilter := supabase.RawFilter("id", "eq", buildID) + "&" + supabase.RawFilter("user_id", "eq", id.ID)
	if err := s.gw.Delete(ctx, buildsTable, rawFilter); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete build")
	}
	return nil
}
