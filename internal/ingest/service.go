package ingest

import (
	"context"

	"github.com/ramosvitor/tibiaset-backend/pkg/db/models"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
	"github.com/ramosvitor/tibiaset-backend/pkg/types"
)

// scraper is the external-source surface the pipeline consumes.
type scraper interface {
	CreatureNames(ctx context.Context) ([]string, error)
	CreatureInfo(ctx context.Context, name string) (map[string]string, error)
	ItemNames(ctx context.Context) ([]string, error)
	ItemInfo(ctx context.Context, name string) (map[string]string, error)
}

type store interface {
	UpsertMonster(ctx context.Context, monster *models.Monster) error
	UpsertItem(ctx context.Context, item *models.Item) error
}

// Service runs the sequential scrape-parse-upsert pipeline. A failed fetch
// or upsert for one entity is logged and skipped; the run always proceeds
// to the next name.
type Service struct {
	scraper scraper
	store   store
	logg    *logger.Logger
}

func NewService(sc scraper, st store, logg *logger.Logger) (*Service, error) {
	if sc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "scraper is required")
	}
	if st == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "store is required")
	}
	return &Service{scraper: sc, store: st, logg: logg}, nil
}

// Summary counts what a run touched. Skipped covers both fetch and upsert
// failures.
type Summary struct {
	MonstersUpserted int
	MonstersSkipped  int
	ItemsUpserted    int
	ItemsSkipped     int
}

// Run refreshes monsters then items. Only a failure to list the entity
// names themselves aborts the corresponding half of the run.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	if err := s.runMonsters(ctx, &summary); err != nil {
		return summary, err
	}
	if err := s.runItems(ctx, &summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Service) runMonsters(ctx context.Context, summary *Summary) error {
	names, err := s.scraper.CreatureNames(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list creature names")
	}

	for _, name := range names {
		info, err := s.scraper.CreatureInfo(ctx, name)
		if err != nil {
			s.skip(ctx, "monster", name, err)
			summary.MonstersSkipped++
			continue
		}

		monster := monsterFromInfo(name, info)
		if err := s.store.UpsertMonster(ctx, monster); err != nil {
			s.skip(ctx, "monster", name, err)
			summary.MonstersSkipped++
			continue
		}

		summary.MonstersUpserted++
		if s.logg != nil {
			s.logg.Info(s.logg.WithField(ctx, "monster", name), "ingest.monster.upserted")
		}
	}
	return nil
}

func (s *Service) runItems(ctx context.Context, summary *Summary) error {
	names, err := s.scraper.ItemNames(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list item names")
	}

	for _, name := range names {
		info, err := s.scraper.ItemInfo(ctx, name)
		if err != nil {
			s.skip(ctx, "item", name, err)
			summary.ItemsSkipped++
			continue
		}

		item := itemFromInfo(name, info)
		if err := s.store.UpsertItem(ctx, item); err != nil {
			s.skip(ctx, "item", name, err)
			summary.ItemsSkipped++
			continue
		}

		summary.ItemsUpserted++
		if s.logg != nil {
			s.logg.Info(s.logg.WithField(ctx, "item", name), "ingest.item.upserted")
		}
	}
	return nil
}

func (s *Service) skip(ctx context.Context, kind, name string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{kind: name})
	s.logg.Warn(ctx, "ingest."+kind+".skipped: "+err.Error())
}

func monsterFromInfo(name string, info map[string]string) *models.Monster {
	return &models.Monster{
		Name:       name,
		Level:      ParseCount(info["experience"]),
		Health:     ParseCount(info["hit points"]),
		AttackType: info["strong against"],
		Weaknesses: info["weak against"],
		Attributes: types.AttrMap{
			"speed": info["speed"],
			"armor": info["armor"],
		},
		Loots:   info["loot"],
		Comment: "",
	}
}

func itemFromInfo(name string, info map[string]string) *models.Item {
	return &models.Item{
		Name:           name,
		Slot:           SlotCode(info["slot"]),
		Vocation:       info["vocation"],
		LevelRequired:  ParseCount(info["required level"]),
		Attack:         ParseCount(info["attack"]),
		Defense:        ParseCount(info["defense"]),
		Magic:          ParseCount(info["magic level"]),
		Description:    info["description"],
		Classification: ClassificationCode(info["classification"]),
		Tier:           0,
	}
}
