package ingest

import (
	"strconv"
	"strings"
)

// slotCodes and classificationCodes translate the wiki's free-text labels
// into the integer codes the catalog stores. Unknown labels map to 0.
var slotCodes = map[string]int{
	"head":            1,
	"armor":           2,
	"legs":            3,
	"feet":            4,
	"shield":          5,
	"weapon":          6,
	"distance weapon": 7,
	"two-handed":      8,
	"amulet":          9,
	"ring":            10,
	"backpack":        11,
}

var classificationCodes = map[string]int{
	"sword":     1,
	"club":      2,
	"axe":       3,
	"distance":  4,
	"wand":      5,
	"rod":       6,
	"helmet":    7,
	"armor":     8,
	"legs":      9,
	"boots":     10,
	"shield":    11,
	"amulet":    12,
	"ring":      13,
	"container": 14,
	"tool":      15,
}

func SlotCode(label string) int {
	return slotCodes[strings.ToLower(strings.TrimSpace(label))]
}

func ClassificationCode(label string) int {
	return classificationCodes[strings.ToLower(strings.TrimSpace(label))]
}

// ParseCount reads the wiki's comma-grouped numerics ("4,200"). Anything
// unparseable counts as zero.
func ParseCount(raw string) int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return value
}
