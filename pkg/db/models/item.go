package models

// Item is a catalog row upserted by the ingest job, keyed by unique name.
type Item struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string `gorm:"column:name;not null;uniqueIndex"`
	Slot           int    `gorm:"column:slot;not null;default:0"`
	Vocation       string `gorm:"column:vocation;not null;default:''"`
	LevelRequired  int    `gorm:"column:level_required;not null;default:0"`
	Attack         int    `gorm:"column:attack;not null;default:0"`
	Defense        int    `gorm:"column:defense;not null;default:0"`
	Magic          int    `gorm:"column:magic;not null;default:0"`
	Description    string `gorm:"column:description;not null;default:''"`
	Classification int    `gorm:"column:classification;not null;default:0"`
	Tier           int    `gorm:"column:tier;not null;default:0"`
}
