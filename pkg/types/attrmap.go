package types

// AttrMap holds open string-keyed attributes (monster speed/armor, build slot
// selections, wheel of destiny points). Values stay loosely typed so catalog
// schema drift does not require a code change.
type AttrMap map[string]any
