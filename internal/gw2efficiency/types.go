package gw2efficiency

import (
	"bytes"
	"strconv"
)

// Recipe is a community-maintained recipe record. These records describe
// recipes the game-data service does not expose (mystic forge conversions,
// achievement unlocks and similar). The data is hand-edited upstream, so
// numeric fields are not reliably typed.
type Recipe struct {
	Name            string       `json:"name"`
	OutputItemID    int          `json:"output_item_id"`
	OutputItemCount Count        `json:"output_item_count"`
	Disciplines     []string     `json:"disciplines"`
	Ingredients     []Ingredient `json:"ingredients"`
}

// Ingredient is one input of a community recipe.
type Ingredient struct {
	ItemID int `json:"item_id"`
	Count  int `json:"count"`
}

// Count is an output quantity that upstream data encodes as either a JSON
// number or a numeric string, and occasionally as something unparseable.
// Decoding never fails; an unparseable value is carried as invalid so the
// converter can report it against the record's name.
type Count struct {
	value int
	valid bool
}

// NewCount builds a valid count, for tests and fixtures.
func NewCount(value int) Count {
	return Count{value: value, valid: true}
}

// Value returns the parsed quantity and whether it was parseable.
func (c Count) Value() (int, bool) {
	return c.value, c.valid
}

// UnmarshalJSON accepts a number or a numeric string. Anything else leaves
// the count invalid without failing the enclosing record.
func (c *Count) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		*c = Count{}
		return nil
	}
	*c = Count{value: n, valid: true}
	return nil
}
