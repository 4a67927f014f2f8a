package pgn

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/vytor/uci2pgn/internal/uci"
)

var headerRe = regexp.MustCompile(`\[(\w+)\s+"([^"]+)"\]`)

// ParsePGNHeaders extracts PGN header tags into a map
func ParsePGNHeaders(pgn string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(pgn, "\n") {
		if !strings.HasPrefix(line, "[") {
			continue
		}
		m := headerRe.FindStringSubmatch(line)
		if len(m) == 3 {
			out[m[1]] = m[2]
		}
	}
	return out
}

// Mainline replays a PGN game and returns its mainline as UCI tokens.
func Mainline(pgn string) ([]string, error) {
	pgnOpt, err := chess.PGN(strings.NewReader(pgn))
	if err != nil {
		return nil, fmt.Errorf("parse pgn: %w", err)
	}
	game := chess.NewGame(pgnOpt)

	moves := game.Moves()
	tokens := make([]string, 0, len(moves))
	for _, m := range moves {
		tokens = append(tokens, uci.FromChess(m).String())
	}
	return tokens, nil
}
