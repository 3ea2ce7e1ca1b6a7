// Package charsheet defines the character sheet data contract between the
// ZenConnect bot and the mini-app display surface.
//
// The bot serializes a character snapshot into the `stats` URL query
// parameter as URL-encoded JSON. The shape is producer-defined and untyped
// at the boundary: any individual field may be missing or carry the wrong
// type, and the sheet must still render with documented defaults. Only a
// missing or unparseable payload is an error.
package charsheet

import (
	"errors"
	"strconv"
	"strings"
)

// Display defaults substituted for absent fields.
const (
	DefaultName      = "Unknown"
	DefaultClass     = "Unknown"
	StatPlaceholder  = "-"
	NoAbilitiesLabel = "No abilities"
)

// karmaProgressCycle is the karma bar period: the bar fills once per 100
// karma and wraps.
const karmaProgressCycle = 100

// User-facing notices for the two terminal payload failures.
const (
	MissingPayloadNotice   = "No character stats provided."
	MalformedPayloadNotice = "Error loading character stats."
)

// ErrMissingPayload reports that no stats payload was supplied.
var ErrMissingPayload = errors.New("character stats payload is missing")

// ErrMalformedPayload reports a payload that could not be decoded or parsed.
var ErrMalformedPayload = errors.New("character stats payload is malformed")

// Notice maps a decode failure to its exact inline display message.
// Unknown errors fall back to the malformed-payload notice.
func Notice(err error) string {
	if errors.Is(err, ErrMissingPayload) {
		return MissingPayloadNotice
	}
	return MalformedPayloadNotice
}

// Stat is one attribute slot value with explicit presence.
//
// Presence follows the producer's loose-truthiness rule: a field that is
// missing, null, an empty string, or the number zero counts as absent and
// renders the placeholder. The string "0" is present (non-empty), so a
// producer that wants a visible zero attribute sends it as a string.
type Stat struct {
	text    string
	present bool
}

// NewStat returns a present stat with the given display text, or an absent
// stat when text is empty.
func NewStat(text string) Stat {
	text = strings.TrimSpace(text)
	return Stat{text: text, present: text != ""}
}

// Present reports whether the producer supplied a truthy value.
func (s Stat) Present() bool {
	return s.present
}

// Display returns the slot text, substituting the placeholder when absent.
func (s Stat) Display() string {
	if !s.present {
		return StatPlaceholder
	}
	return s.text
}

// CharacterState is a decoded character snapshot. The zero value renders an
// all-default sheet.
type CharacterState struct {
	Name  string
	Class string

	Wisdom       Stat
	Intelligence Stat
	Strength     Stat
	Dexterity    Stat
	Constitution Stat
	Charisma     Stat

	HP        int
	MaxHP     int
	Energy    int
	MaxEnergy int

	Karma int

	Abilities []string
}

// DisplayName returns the character name or its default.
func (c CharacterState) DisplayName() string {
	if strings.TrimSpace(c.Name) == "" {
		return DefaultName
	}
	return c.Name
}

// DisplayClass returns the character class or its default.
func (c CharacterState) DisplayClass() string {
	if strings.TrimSpace(c.Class) == "" {
		return DefaultClass
	}
	return c.Class
}

// KarmaProgress returns karma mod 100 normalized to [0,100), used as the
// karma bar width percentage. Negative karma wraps into range instead of
// producing a negative width.
func (c CharacterState) KarmaProgress() int {
	progress := c.Karma % karmaProgressCycle
	if progress < 0 {
		progress += karmaProgressCycle
	}
	return progress
}

// formatNumber renders a JSON number without a trailing ".0" for integers.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
