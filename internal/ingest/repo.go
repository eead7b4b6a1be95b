package ingest

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ramosvitor/tibiaset-backend/pkg/db/models"
)

// Repository upserts catalog rows over a direct database connection. The
// served API never writes these tables; only this offline path does.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an ingest repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertMonster inserts the monster or, on a name conflict, overwrites every
// mapped field so re-runs converge on the latest scrape.
func (r *Repository) UpsertMonster(ctx context.Context, monster *models.Monster) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"level", "health", "attack_type", "weaknesses", "attributes", "loots", "comment",
			}),
		}).
		Create(monster).Error
}

// UpsertItem inserts the item or, on a name conflict, overwrites every
// mapped field.
func (r *Repository) UpsertItem(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"slot", "vocation", "level_required", "attack", "defense", "magic",
				"description", "classification", "tier",
			}),
		}).
		Create(item).Error
}
