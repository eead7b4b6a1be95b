package models

// Imbuement has no in-repo ingestion path; rows arrive out of band.
type Imbuement struct {
	ID              int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string `gorm:"column:name;not null;uniqueIndex"`
	ApplicableSlots string `gorm:"column:applicable_slots;not null;default:''"`
	BonusAttack     int    `gorm:"column:bonus_attack;not null;default:0"`
	BonusDefense    int    `gorm:"column:bonus_defense;not null;default:0"`
	BonusMagic      int    `gorm:"column:bonus_magic;not null;default:0"`
}
