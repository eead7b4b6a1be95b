package builds

import "github.com/ramosvitor/tibiaset-backend/pkg/types"

// Build is a stored loadout, returned exactly as the proxy holds it.
type Build struct {
	ID              string        `json:"id"`
	UserID          int64         `json:"user_id"`
	Items           types.AttrMap `json:"items"`
	Imbuements      types.AttrMap `json:"imbuements"`
	Gems            types.AttrMap `json:"gems"`
	MonsterID       *int64        `json:"monster_id"`
	WheelOfDestiny  types.AttrMap `json:"wheel_of_destiny"`
	TotalAttributes types.AttrMap `json:"total_attributes"`
}

// CreateRequest is the JSON body of POST /builds/. The three selection maps
// are required (empty maps are fine); the rest is optional.
type CreateRequest struct {
	Items           types.AttrMap `json:"items" validate:"required"`
	Imbuements      types.AttrMap `json:"imbuements" validate:"required"`
	Gems            types.AttrMap `json:"gems" validate:"required"`
	MonsterID       *int64        `json:"monster_id,omitempty"`
	WheelOfDestiny  types.AttrMap `json:"wheel_of_destiny,omitempty"`
	TotalAttributes types.AttrMap `json:"total_attributes,omitempty"`
}
