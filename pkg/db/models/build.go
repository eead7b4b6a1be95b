package models

import "github.com/ramosvitor/tibiaset-backend/pkg/types"

// Build is a user-owned loadout. The id is a generated token, not a serial.
type Build struct {
	ID              string        `gorm:"column:id;type:text;primaryKey"`
	UserID          int64         `gorm:"column:user_id;not null;index"`
	Items           types.AttrMap `gorm:"column:items;type:jsonb;serializer:json"`
	Imbuements      types.AttrMap `gorm:"column:imbuements;type:jsonb;serializer:json"`
	Gems            types.AttrMap `gorm:"column:gems;type:jsonb;serializer:json"`
	MonsterID       *int64        `gorm:"column:monster_id"`
	WheelOfDestiny  types.AttrMap `gorm:"column:wheel_of_destiny;type:jsonb;serializer:json"`
	TotalAttributes types.AttrMap `gorm:"column:total_attributes;type:jsonb;serializer:json"`
}
