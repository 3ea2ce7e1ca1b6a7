// Package templates renders the character sheet page as templ components.
package templates

import (
	"fmt"

	"github.com/louisbranch/zenstats/internal/charsheet"
)

// AttributeRow is one labeled attribute slot.
type AttributeRow struct {
	// Key is the producer field name, used as a stable slot identifier.
	Key   string
	Label string
	Value string
}

// SheetView holds the display strings for every character sheet slot.
// Defaults are already applied: templates substitute nothing.
type SheetView struct {
	Name          string
	Class         string
	Attributes    []AttributeRow
	HP            string
	Energy        string
	Karma         string
	KarmaProgress int
	Abilities     []string
}

// NewSheetView projects a decoded character state onto the display slots.
func NewSheetView(state charsheet.CharacterState) SheetView {
	return SheetView{
		Name:  state.DisplayName(),
		Class: state.DisplayClass(),
		Attributes: []AttributeRow{
			{Key: "wisdom", Label: "Wisdom", Value: state.Wisdom.Display()},
			{Key: "intelligence", Label: "Intelligence", Value: state.Intelligence.Display()},
			{Key: "strength", Label: "Strength", Value: state.Strength.Display()},
			{Key: "dexterity", Label: "Dexterity", Value: state.Dexterity.Display()},
			{Key: "constitution", Label: "Constitution", Value: state.Constitution.Display()},
			{Key: "charisma", Label: "Charisma", Value: state.Charisma.Display()},
		},
		HP:            fmt.Sprintf("%d/%d", state.HP, state.MaxHP),
		Energy:        fmt.Sprintf("%d/%d", state.Energy, state.MaxEnergy),
		Karma:         fmt.Sprintf("%d", state.Karma),
		KarmaProgress: state.KarmaProgress(),
		Abilities:     state.Abilities,
	}
}
