package charsheet

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MarshalPayload serializes a CharacterState into the producer JSON shape
// consumed by Decode. Absent fields are omitted; resource and karma values
// are always emitted so a legitimate zero survives the round trip.
func MarshalPayload(state CharacterState) ([]byte, error) {
	payload := map[string]any{
		"hp":         state.HP,
		"max_hp":     state.MaxHP,
		"energy":     state.Energy,
		"max_energy": state.MaxEnergy,
		"karma":      state.Karma,
	}
	if name := strings.TrimSpace(state.Name); name != "" {
		payload["name"] = name
	}
	if class := strings.TrimSpace(state.Class); class != "" {
		payload["class"] = class
	}
	setStat(payload, "wisdom", state.Wisdom)
	setStat(payload, "intelligence", state.Intelligence)
	setStat(payload, "strength", state.Strength)
	setStat(payload, "dexterity", state.Dexterity)
	setStat(payload, "constitution", state.Constitution)
	setStat(payload, "charisma", state.Charisma)
	if len(state.Abilities) > 0 {
		payload["abilities"] = state.Abilities
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal stats payload: %w", err)
	}
	return data, nil
}

// Encode returns the URL-encoded stats parameter value for a state.
func Encode(state CharacterState) (string, error) {
	data, err := MarshalPayload(state)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(data)), nil
}

// SheetURL builds the full mini-app URL the bot attaches to its sheet
// button: base with the stats query parameter set.
func SheetURL(base string, state CharacterState) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse sheet base url: %w", err)
	}
	data, err := MarshalPayload(state)
	if err != nil {
		return "", err
	}
	query := u.Query()
	query.Set("stats", string(data))
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// setStat emits a present stat, preferring a JSON number when the display
// text is numeric. Zero stays a string: the number zero would read back as
// absent under the loose-truthiness rule.
func setStat(payload map[string]any, key string, stat Stat) {
	if !stat.Present() {
		return
	}
	text := stat.Display()
	if value, err := strconv.ParseFloat(text, 64); err == nil && value != 0 && formatNumber(value) == text {
		payload[key] = value
		return
	}
	payload[key] = text
}
