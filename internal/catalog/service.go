package catalog

import (
	"context"
	"fmt"

	"github.com/ramosvitor/tibiaset-backend/pkg/supabase"
)

// Service lists the read-only catalog collections. Every listing is a filter
// build plus one gateway call; read failures keep the downstream status.
type Service interface {
	ListItems(ctx context.Context, f ItemFilters) ([]Item, error)
	ListMonsters(ctx context.Context, f MonsterFilters) ([]Monster, error)
	ListGems(ctx context.Context, f GemFilters) ([]Gem, error)
	ListImbuements(ctx context.Context, f ImbuementFilters) ([]Imbuement, error)
}

type gateway interface {
	List(ctx context.Context, table string, filters *supabase.Filters, dest any) error
}

type service struct {
	gw gateway
}

// NewService constructs the catalog service over the data-store gateway.
func NewService(gw gateway) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	return &service{gw: gw}, nil
}

func (s *service) ListItems(ctx context.Context, f ItemFilters) ([]Item, error) {
	filters := supabase.NewFilters()
	if f.Slot != nil {
		filters.Eq("slot", *f.Slot)
	}
	if f.Vocation != nil {
		filters.ILike("vocation", *f.Vocation)
	}
	if f.MinLevel != nil {
		filters.Gte("level_required", *f.MinLevel)
	}

	items := []Item{}
	if err := s.gw.List(ctx, "items", filters, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *service) ListMonsters(ctx context.Context, f MonsterFilters) ([]Monster, error) {
	filters := supabase.NewFilters()
	if f.Name != nil {
		filters.ILike("name", *f.Name)
	}
	if f.Weakness != nil {
		filters.ILike("weaknesses", *f.Weakness)
	}
	if f.MinLevel != nil {
		filters.Gte("level", *f.MinLevel)
	}

	monsters := []Monster{}
	if err := s.gw.List(ctx, "monsters", filters, &monsters); err != nil {
		return nil, err
	}
	return monsters, nil
}

func (s *service) ListGems(ctx context.Context, f GemFilters) ([]Gem, error) {
	filters := supabase.NewFilters()
	if f.MinBonusAttack != nil {
		filters.Gte("bonus_attack", *f.MinBonusAttack)
	}
	if f.MinBonusDefense != nil {
		filters.Gte("bonus_defense", *f.MinBonusDefense)
	}
	if f.MinBonusMagic != nil {
		filters.Gte("bonus_magic", *f.MinBonusMagic)
	}

	gems := []Gem{}
	if err := s.gw.List(ctx, "gems", filters, &gems); err != nil {
		return nil, err
	}
	return gems, nil
}

func (s *service) ListImbuements(ctx context.Context, f ImbuementFilters) ([]Imbuement, error) {
	filters := supabase.NewFilters()
	if f.ApplicableSlot != nil {
		filters.ILike("applicable_slots", *f.ApplicableSlot)
	}
	if f.MinBonusAttack != nil {
		filters.Gte("bonus_attack", *f.MinBonusAttack)
	}
	if f.MinBonusDefense != nil {
		filters.Gte("bonus_defense", *f.MinBonusDefense)
	}
	if f.MinBonusMagic != nil {
		filters.Gte("bonus_magic", *f.MinBonusMagic)
	}

	imbuements := []Imbuement{}
	if err := s.gw.List(ctx, "imbuements", filters, &imbuements); err != nil {
		return nil, err
	}
	return imbuements, nil
}
