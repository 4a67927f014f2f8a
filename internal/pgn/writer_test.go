package pgn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/uci2pgn/internal/pgn"
)

const emptyGamePGN = `[Event "?"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

*`

func TestGameString_NoMoves(t *testing.T) {
	g := pgn.Game{Tags: pgn.DefaultTags()}
	assert.Equal(t, emptyGamePGN, g.String())
}

func TestGameString_WithMoves(t *testing.T) {
	g := pgn.Game{Tags: pgn.DefaultTags(), Moves: []string{"e4", "e5", "Nf3"}}
	expected := `[Event "?"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

1. e4 e5 2. Nf3 *`
	assert.Equal(t, expected, g.String())
}

func TestMovetext(t *testing.T) {
	tests := []struct {
		name     string
		moves    []string
		result   string
		expected string
	}{
		{name: "empty", moves: nil, result: "", expected: "*"},
		{name: "single white move", moves: []string{"e4"}, result: "*", expected: "1. e4 *"},
		{name: "full move pair", moves: []string{"e4", "d5"}, result: "*", expected: "1. e4 d5 *"},
		{name: "decisive result", moves: []string{"f3", "e5", "g4", "Qh4#"}, result: "0-1", expected: "1. f3 e5 2. g4 Qh4# 0-1"},
		{name: "double digit move numbers", moves: []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"},
			result: "*", expected: "1. Nf3 Nf6 2. Ng1 Ng8 3. Nf3 Nf6 4. Ng1 Ng8 5. Nf3 Nf6 6. Ng1 Ng8 7. Nf3 Nf6 8. Ng1 Ng8 9. Nf3 Nf6 10. Ng1 Ng8 *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pgn.Movetext(tt.moves, tt.result))
		})
	}
}

func TestSetTag(t *testing.T) {
	g := pgn.Game{Tags: pgn.DefaultTags()}
	g.SetTag("Event", "Casual")
	g.SetTag("ECO", "C20")

	headers := pgn.ParsePGNHeaders(g.String())
	assert.Equal(t, "Casual", headers["Event"])
	assert.Equal(t, "C20", headers["ECO"])
	assert.Len(t, g.Tags, 8)
}

func TestGameString_EscapesTagValues(t *testing.T) {
	g := pgn.Game{Tags: []pgn.Tag{{Name: "Opening", Value: `The "Fried" Liver \ Traxler`}}}
	assert.Equal(t, "[Opening \"The \\\"Fried\\\" Liver \\\\ Traxler\"]\n\n*", g.String())
}
