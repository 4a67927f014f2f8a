// Package pgn renders and reads Portable Game Notation text.
package pgn

import (
	"strconv"
	"strings"
)

// ResultUnknown is the termination marker for a game in progress.
const ResultUnknown = "*"

// Tag is a single PGN header tag pair.
type Tag struct {
	Name  string
	Value string
}

// DefaultTags returns the seven tag roster with placeholder values.
func DefaultTags() []Tag {
	return []Tag{
		{Name: "Event", Value: "?"},
		{Name: "Site", Value: "?"},
		{Name: "Date", Value: "????.??.??"},
		{Name: "Round", Value: "?"},
		{Name: "White", Value: "?"},
		{Name: "Black", Value: "?"},
		{Name: "Result", Value: ResultUnknown},
	}
}

// Game is a single-mainline game ready for rendering. Moves are in SAN.
type Game struct {
	Tags   []Tag
	Moves  []string
	Result string
}

// SetTag replaces the value of an existing tag or appends a new one.
func (g *Game) SetTag(name, value string) {
	for i := range g.Tags {
		if g.Tags[i].Name == name {
			g.Tags[i].Value = value
			return
		}
	}
	g.Tags = append(g.Tags, Tag{Name: name, Value: value})
}

// String renders the game as PGN: tag pairs, a blank line, then movetext
// ending with the result marker.
func (g Game) String() string {
	var sb strings.Builder
	for _, tag := range g.Tags {
		sb.WriteString("[")
		sb.WriteString(tag.Name)
		sb.WriteString(" \"")
		sb.WriteString(escapeTagValue(tag.Value))
		sb.WriteString("\"]\n")
	}
	if len(g.Tags) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(Movetext(g.Moves, g.Result))
	return sb.String()
}

// Movetext numbers SAN moves from the initial position with white to move
// and appends the result marker ("*" when empty).
func Movetext(moves []string, result string) string {
	if result == "" {
		result = ResultUnknown
	}
	var sb strings.Builder
	for i, san := range moves {
		if i%2 == 0 {
			sb.WriteString(strconv.Itoa(i/2 + 1))
			sb.WriteString(". ")
		}
		sb.WriteString(san)
		sb.WriteString(" ")
	}
	sb.WriteString(result)
	return sb.String()
}

func escapeTagValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}
