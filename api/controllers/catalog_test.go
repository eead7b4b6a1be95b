package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogsvc "github.com/ramosvitor/tibiaset-backend/internal/catalog"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
)

type stubCatalogService struct {
	items      []catalogsvc.Item
	monsters   []catalogsvc.Monster
	gems       []catalogsvc.Gem
	imbuements []catalogsvc.Imbuement
	err        error

	gotItemFilters      catalogsvc.ItemFilters
	gotMonsterFilters   catalogsvc.MonsterFilters
	gotGemFilters       catalogsvc.GemFilters
	gotImbuementFilters catalogsvc.ImbuementFilters
}

func (s *stubCatalogService) ListItems(_ context.Context, f catalogsvc.ItemFilters) ([]catalogsvc.Item, error) {
	s.gotItemFilters = f
	return s.items, s.err
}

func (s *stubCatalogService) ListMonsters(_ context.Context, f catalogsvc.MonsterFilters) ([]catalogsvc.Monster, error) {
	s.gotMonsterFilters = f
	return s.monsters, s.err
}

func (s *stubCatalogService) ListGems(_ context.Context, f catalogsvc.GemFilters) ([]catalogsvc.Gem, error) {
	s.gotGemFilters = f
	return s.gems, s.err
}

func (s *stubCatalogService) ListImbuements(_ context.Context, f catalogsvc.ImbuementFilters) ([]catalogsvc.Imbuement, error) {
	s.gotImbuementFilters = f
	return s.imbuements, s.err
}

func TestListItemsParsesFilters(t *testing.T) {
	svc := &stubCatalogService{items: []catalogsvc.Item{{ID: 1, Name: "Crown Armor"}}}
	handler := ListItems(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/items?slot=2&min_level=50&vocation=knight", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	f := svc.gotItemFilters
	if f.Slot == nil || *f.Slot != 2 {
		t.Fatalf("slot filter = %v, want 2", f.Slot)
	}
	if f.MinLevel == nil || *f.MinLevel != 50 {
		t.Fatalf("min_level filter = %v, want 50", f.MinLevel)
	}
	if f.Vocation == nil || *f.Vocation != "knight" {
		t.Fatalf("vocation filter = %v, want knight", f.Vocation)
	}

	var items []catalogsvc.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Crown Armor" {
		t.Fatalf("items = %+v", items)
	}
}

func TestListItemsOmittedFiltersStayNil(t *testing.T) {
	svc := &stubCatalogService{}
	handler := ListItems(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	f := svc.gotItemFilters
	if f.Slot != nil || f.MinLevel != nil || f.Vocation != nil {
		t.Fatalf("filters = %+v, want all nil", f)
	}
}

func TestListItemsRejectsMalformedInt(t *testing.T) {
	handler := ListItems(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/items?slot=abc", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListMonstersRelaysDownstreamStatus(t *testing.T) {
	svc := &stubCatalogService{
		err: pkgerrors.New(pkgerrors.CodeDependency, "store returned 503").WithHTTPStatus(http.StatusServiceUnavailable),
	}
	handler := ListMonsters(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/monsters?name=Dragon", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestListGemsParsesThresholds(t *testing.T) {
	svc := &stubCatalogService{}
	handler := ListGems(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/gems?min_bonus_attack=3&min_bonus_magic=2", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	f := svc.gotGemFilters
	if f.MinBonusAttack == nil || *f.MinBonusAttack != 3 {
		t.Fatalf("min_bonus_attack = %v, want 3", f.MinBonusAttack)
	}
	if f.MinBonusDefense != nil {
		t.Fatalf("min_bonus_defense = %v, want nil", f.MinBonusDefense)
	}
	if f.MinBonusMagic == nil || *f.MinBonusMagic != 2 {
		t.Fatalf("min_bonus_magic = %v, want 2", f.MinBonusMagic)
	}
}

func TestListImbuementsParsesSlot(t *testing.T) {
	svc := &stubCatalogService{}
	handler := ListImbuements(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/imbuements?applicable_slot=helmet&min_bonus_defense=1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	f := svc.gotImbuementFilters
	if f.ApplicableSlot == nil || *f.ApplicableSlot != "helmet" {
		t.Fatalf("applicable_slot = %v, want helmet", f.ApplicableSlot)
	}
	if f.MinBonusDefense == nil || *f.MinBonusDefense != 1 {
		t.Fatalf("min_bonus_defense = %v, want 1", f.MinBonusDefense)
	}
}
