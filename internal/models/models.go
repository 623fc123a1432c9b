package models

import (
	"bytes"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Text is an optional field supplied by the sports-data service. The service is loose about
// types, so Text accepts JSON strings, numbers, booleans and null.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*t = ""
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := jsoniter.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("decode text: %w", err)
		}
		*t = Text(s)
	case '{', '[':
		return fmt.Errorf("decode text: unexpected %s", raw[:1])
	default:
		*t = Text(raw)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// IsZero reports whether the service supplied no value.
func (t Text) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Or returns fallback when the field is empty.
func (t Text) Or(fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return string(t)
}

// Sport is one entry of the sports catalogue.
type Sport struct {
	Name        Text
	Description Text
}

// Player is a player search hit.
type Player struct {
	Name     Text
	Team     Text
	Position Text
	ThumbURL Text
}

// HasThumb reports whether the player carries a photo URL.
func (p Player) HasThumb() bool {
	return !p.ThumbURL.IsZero()
}

// Team is a team search hit.
type Team struct {
	Name        Text
	FormedYear  Text
	Stadium     Text
	Description Text
}

// Match is a past fixture between two teams.
type Match struct {
	Date      Text
	Event     Text
	HomeScore Text
	AwayScore Text
}
