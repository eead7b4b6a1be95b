package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/ramosvitor/tibiaset-backend/pkg/db/models"
)

type stubScraper struct {
	creatures    []string
	creaturesErr error
	creatureInfo map[string]map[string]string
	items        []string
	itemsErr     error
	itemInfo     map[string]map[string]string
}

func (s *stubScraper) CreatureNames(context.Context) ([]string, error) {
	return s.creatures, s.creaturesErr
}

func (s *stubScraper) CreatureInfo(_ context.Context, name string) (map[string]string, error) {
	info, ok := s.creatureInfo[name]
	if !ok {
		return nil, errors.New("fetch failed")
	}
	return info, nil
}

func (s *stubScraper) ItemNames(context.Context) ([]string, error) {
	return s.items, s.itemsErr
}

func (s *stubScraper) ItemInfo(_ context.Context, name string) (map[string]string, error) {
	info, ok := s.itemInfo[name]
	if !ok {
		return nil, errors.New("fetch failed")
	}
	return info, nil
}

type stubStore struct {
	monsters   []*models.Monster
	items      []*models.Item
	monsterErr error
	itemErr    error
}

func (s *stubStore) UpsertMonster(_ context.Context, monster *models.Monster) error {
	if s.monsterErr != nil {
		return s.monsterErr
	}
	s.monsters = append(s.monsters, monster)
	return nil
}

func (s *stubStore) UpsertItem(_ context.Context, item *models.Item) error {
	if s.itemErr != nil {
		return s.itemErr
	}
	s.items = append(s.items, item)
	return nil
}

func TestRunMapsScrapedFields(t *testing.T) {
	scraper := &stubScraper{
		creatures: []string{"Dragon"},
		creatureInfo: map[string]map[string]string{
			"Dragon": {
				"hit points":     "1,000",
				"experience":     "700",
				"strong against": "Fire",
				"weak against":   "Ice",
				"speed":          "86",
				"armor":          "25",
				"loot":           "Gold Coin, Dragon Ham",
			},
		},
		items: []string{"Crown Armor"},
		itemInfo: map[string]map[string]string{
			"Crown Armor": {
				"slot":           "Armor",
				"vocation":       "knights and paladins",
				"required level": "30",
				"attack":         "",
				"defense":        "13",
				"magic level":    "",
				"description":    "It is a magnificent armor.",
				"classification": "armor",
			},
		},
	}
	store := &stubStore{}

	svc, err := NewService(scraper, store, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	summary, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.MonstersUpserted != 1 || summary.ItemsUpserted != 1 {
		t.Fatalf("summary = %+v, want one monster and one item upserted", summary)
	}

	monster := store.monsters[0]
	if monster.Name != "Dragon" || monster.Health != 1000 || monster.Level != 700 {
		t.Fatalf("monster = %+v, want Dragon health=1000 level=700", monster)
	}
	if monster.AttackType != "Fire" || monster.Weaknesses != "Ice" {
		t.Fatalf("monster resistances = %q/%q, want Fire/Ice", monster.AttackType, monster.Weaknesses)
	}
	if monster.Attributes["speed"] != "86" || monster.Attributes["armor"] != "25" {
		t.Fatalf("monster attributes = %v", monster.Attributes)
	}

	item := store.items[0]
	if item.Name != "Crown Armor" || item.Slot != 2 || item.Classification != 8 {
		t.Fatalf("item = %+v, want slot=2 classification=8", item)
	}
	if item.LevelRequired != 30 || item.Defense != 13 || item.Attack != 0 {
		t.Fatalf("item numerics = %+v", item)
	}
}

func TestRunSkipsFailedDetailFetch(t *testing.T) {
	scraper := &stubScraper{
		creatures: []string{"Dragon", "Demon"},
		creatureInfo: map[string]map[string]string{
			"Demon": {"hit points": "8,200"},
		},
	}
	store := &stubStore{}

	svc, err := NewService(scraper, store, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	summary, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.MonstersUpserted != 1 || summary.MonstersSkipped != 1 {
		t.Fatalf("summary = %+v, want one upserted and one skipped", summary)
	}
	if store.monsters[0].Name != "Demon" {
		t.Fatalf("upserted monster = %q, want Demon", store.monsters[0].Name)
	}
}

func TestRunSkipsFailedUpsert(t *testing.T) {
	scraper := &stubScraper{
		items: []string{"Fire Axe"},
		itemInfo: map[string]map[string]string{
			"Fire Axe": {"slot": "weapon", "classification": "axe"},
		},
	}
	store := &stubStore{itemErr: errors.New("insert failed")}

	svc, err := NewService(scraper, store, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	summary, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.ItemsUpserted != 0 || summary.ItemsSkipped != 1 {
		t.Fatalf("summary = %+v, want zero upserted and one skipped", summary)
	}
}

func TestRunAbortsWhenNameListingFails(t *testing.T) {
	scraper := &stubScraper{creaturesErr: errors.New("listing down")}

	svc, err := NewService(scraper, &stubStore{}, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want non-nil")
	}
}
