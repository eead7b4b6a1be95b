package catalog

import "github.com/ramosvitor/tibiaset-backend/pkg/types"

// Item is a piece of equipment. Slot and Classification are the integer codes
// assigned by the ingest lookup tables.
type Item struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slot           int    `json:"slot"`
	Vocation       string `json:"vocation"`
	LevelRequired  int    `json:"level_required"`
	Attack         int    `json:"attack"`
	Defense        int    `json:"defense"`
	Magic          int    `json:"magic"`
	Description    string `json:"description"`
	Classification int    `json:"classification"`
	Tier           int    `json:"tier"`
}

type Monster struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Level      int           `json:"level"`
	Health     int           `json:"health"`
	AttackType string        `json:"attack_type"`
	Weaknesses string        `json:"weaknesses"`
	Attributes types.AttrMap `json:"attributes"`
	Loots      string        `json:"loots"`
	Comment    string        `json:"comment"`
}

type Gem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	BonusAttack  int    `json:"bonus_attack"`
	BonusDefense int    `json:"bonus_defense"`
	BonusMagic   int    `json:"bonus_magic"`
}

type Imbuement struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ApplicableSlots string `json:"applicable_slots"`
	BonusAttack     int    `json:"bonus_attack"`
	BonusDefense    int    `json:"bonus_defense"`
	BonusMagic      int    `json:"bonus_magic"`
}

// Optional filter sets, one per listing endpoint. A nil field leaves that
// column unconstrained.
type ItemFilters struct {
	Slot     *int
	Vocation *string
	MinLevel *int
}

type MonsterFilters struct {
	Name     *string
	Weakness *string
	MinLevel *int
}

type GemFilters struct {
	MinBonusAttack  *int
	MinBonusDefense *int
	MinBonusMagic   *int
}

type ImbuementFilters struct {
	ApplicableSlot  *string
	MinBonusAttack  *int
	MinBonusDefense *int
	MinBonusMagic   *int
}
