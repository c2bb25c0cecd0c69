// Package strategy provides the strategy catalog and selection state
package strategy

import (
	"encoding/json"

	"github.com/bobmcallan/stockwise/internal/models"
)

// Selection is the set of currently active strategies.
// It is a comparable value: Toggle returns a new Selection and never mutates
// the receiver, so two selections with the same members are ==.
type Selection struct {
	bits uint8
}

// index returns the catalog position of s, or -1 for unknown strategies.
func index(s models.StrategyType) int {
	for i, opt := range models.StrategyCatalog() {
		if opt.Type == s {
			return i
		}
	}
	return -1
}

// NewSelection builds a selection from the given strategies. Unknown values are ignored.
func NewSelection(strategies ...models.StrategyType) Selection {
	var sel Selection
	for _, s := range strategies {
		if i := index(s); i >= 0 {
			sel.bits |= 1 << uint(i)
		}
	}
	return sel
}

// Toggle adds s if absent and removes it if present.
// Toggling an unknown strategy returns the selection unchanged.
func (sel Selection) Toggle(s models.StrategyType) Selection {
	i := index(s)
	if i < 0 {
		return sel
	}
	sel.bits ^= 1 << uint(i)
	return sel
}

// Has reports whether s is selected.
func (sel Selection) Has(s models.StrategyType) bool {
	i := index(s)
	return i >= 0 && sel.bits&(1<<uint(i)) != 0
}

// Len returns the number of selected strategies.
func (sel Selection) Len() int {
	n := 0
	for b := sel.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Empty reports whether no strategy is selected.
func (sel Selection) Empty() bool {
	return sel.bits == 0
}

// Strategies returns the selected strategies in catalog order.
func (sel Selection) Strategies() []models.StrategyType {
	out := make([]models.StrategyType, 0, sel.Len())
	for i, opt := range models.StrategyCatalog() {
		if sel.bits&(1<<uint(i)) != 0 {
			out = append(out, opt.Type)
		}
	}
	return out
}

// Labels returns the labels of the selected strategies in catalog order.
func (sel Selection) Labels() []string {
	return models.StrategyLabels(sel.Strategies())
}

// MarshalJSON encodes the selection as a list of labels.
func (sel Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(sel.Labels())
}

// SelectableOption is a catalog entry annotated with its selection state.
type SelectableOption struct {
	models.StrategyOption
	Selected bool `json:"selected"`
}

// Options returns the catalog annotated with sel.
func Options(sel Selection) []SelectableOption {
	catalog := models.StrategyCatalog()
	out := make([]SelectableOption, len(catalog))
	for i, opt := range catalog {
		out[i] = SelectableOption{StrategyOption: opt, Selected: sel.Has(opt.Type)}
	}
	return out
}
