package charsheet

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Decode parses a raw, still URL-encoded stats payload into a CharacterState.
//
// An empty payload returns ErrMissingPayload. A payload that cannot be
// URL-decoded or is not valid JSON returns ErrMalformedPayload. Everything
// else renders: field-level absence or wrong-typedness is never an error,
// each field falls back to its default per the table below.
//
//	name, class      missing / falsy / non-scalar -> "" (renders "Unknown")
//	attributes       missing / null / "" / 0 / non-scalar -> absent ("-")
//	                 other numbers and non-empty strings   -> verbatim
//	hp, max_hp,
//	energy,
//	max_energy,
//	karma            JSON numbers and numeric strings -> value, else 0
//	abilities        array of strings; numeric/bool entries stringified,
//	                 anything else dropped; missing/non-array -> empty
//
// A valid JSON payload that is not an object (for example "5") is not a
// parse error: every field is simply absent and the sheet renders all
// defaults, matching the producer's original lookup semantics.
func Decode(raw string) (CharacterState, error) {
	if strings.TrimSpace(raw) == "" {
		return CharacterState{}, ErrMissingPayload
	}

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return CharacterState{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var payload any
	if err := json.Unmarshal([]byte(decoded), &payload); err != nil {
		return CharacterState{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	fields, _ := payload.(map[string]any)
	return stateFromFields(fields), nil
}

func stateFromFields(fields map[string]any) CharacterState {
	return CharacterState{
		Name:         textField(fields["name"]),
		Class:        textField(fields["class"]),
		Wisdom:       statField(fields["wisdom"]),
		Intelligence: statField(fields["intelligence"]),
		Strength:     statField(fields["strength"]),
		Dexterity:    statField(fields["dexterity"]),
		Constitution: statField(fields["constitution"]),
		Charisma:     statField(fields["charisma"]),
		HP:           intField(fields["hp"]),
		MaxHP:        intField(fields["max_hp"]),
		Energy:       intField(fields["energy"]),
		MaxEnergy:    intField(fields["max_energy"]),
		Karma:        intField(fields["karma"]),
		Abilities:    abilityField(fields["abilities"]),
	}
}

// textField coerces a name/class value to a string, treating falsy and
// non-scalar values as absent.
func textField(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == 0 {
			return ""
		}
		return formatNumber(v)
	case bool:
		if !v {
			return ""
		}
		return "true"
	default:
		return ""
	}
}

// statField applies the loose-truthiness presence rule to one attribute.
func statField(value any) Stat {
	switch v := value.(type) {
	case string:
		return NewStat(v)
	case float64:
		if v == 0 {
			return Stat{}
		}
		return NewStat(formatNumber(v))
	case bool:
		if !v {
			return Stat{}
		}
		return NewStat("true")
	default:
		return Stat{}
	}
}

// intField coerces a resource or karma value to an int. Numeric strings are
// accepted because producers assemble payloads from form-shaped data; any
// other type defaults to zero.
func intField(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

func abilityField(value any) []string {
	entries, ok := value.([]any)
	if !ok || len(entries) == 0 {
		return nil
	}
	abilities := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			abilities = append(abilities, v)
		case float64:
			abilities = append(abilities, formatNumber(v))
		case bool:
			abilities = append(abilities, strconv.FormatBool(v))
		}
	}
	if len(abilities) == 0 {
		return nil
	}
	return abilities
}
