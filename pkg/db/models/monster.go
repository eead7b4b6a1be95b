package models

import "github.com/ramosvitor/tibiaset-backend/pkg/types"

// Monster is a catalog row upserted by the ingest job, keyed by unique name.
// Attributes stays an open map (speed, armor, whatever the wiki adds next).
type Monster struct {
	ID         int64         `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string        `gorm:"column:name;not null;uniqueIndex"`
	Level      int           `gorm:"column:level;not null;default:0"`
	Health     int           `gorm:"column:health;not null;default:0"`
	AttackType string        `gorm:"column:attack_type;not null;default:''"`
	Weaknesses string        `gorm:"column:weaknesses;not null;default:''"`
	Attributes types.AttrMap `gorm:"column:attributes;type:jsonb;serializer:json"`
	Loots      string        `gorm:"column:loots;not null;default:''"`
	Comment    string        `gorm:"column:comment;not null;default:''"`
}
