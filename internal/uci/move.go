// Package uci parses and formats moves in UCI long algebraic notation
// (e.g. "e2e4", "e7e8q").
package uci

import (
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/vytor/uci2pgn/internal/errors"
)

// Move is a syntactically valid UCI move. It says nothing about legality.
type Move struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

// Parse converts a UCI token into a Move. Errors are PARSE_ERROR AppErrors
// without a ply; callers attach one with WithPly.
func Parse(token string) (Move, error) {
	if len(token) != 4 && len(token) != 5 {
		return Move{}, errors.NewParseError(0, token, fmt.Sprintf("expected 4 or 5 characters, got %d", len(token)))
	}

	from, ok := parseSquare(token[0:2])
	if !ok {
		return Move{}, errors.NewParseError(0, token, fmt.Sprintf("invalid origin square %q", token[0:2]))
	}
	to, ok := parseSquare(token[2:4])
	if !ok {
		return Move{}, errors.NewParseError(0, token, fmt.Sprintf("invalid destination square %q", token[2:4]))
	}
	if from == to {
		return Move{}, errors.NewParseError(0, token, "origin and destination are the same square")
	}

	promo := chess.NoPieceType
	if len(token) == 5 {
		promo, ok = parsePromo(token[4])
		if !ok {
			return Move{}, errors.NewParseError(0, token, fmt.Sprintf("invalid promotion piece %q", token[4:]))
		}
	}

	return Move{From: from, To: to, Promo: promo}, nil
}

// String returns the canonical UCI token for the move.
func (m Move) String() string {
	s := squareToString(m.From) + squareToString(m.To)
	switch m.Promo {
	case chess.Queen:
		s += "q"
	case chess.Rook:
		s += "r"
	case chess.Bishop:
		s += "b"
	case chess.Knight:
		s += "n"
	}
	return s
}

// Matches reports whether a library move has the same squares and promotion.
func (m Move) Matches(cm *chess.Move) bool {
	return cm != nil && cm.S1() == m.From && cm.S2() == m.To && cm.Promo() == m.Promo
}

// FromChess converts a library move into its UCI form.
func FromChess(cm *chess.Move) Move {
	if cm == nil {
		return Move{Promo: chess.NoPieceType}
	}
	return Move{From: cm.S1(), To: cm.S2(), Promo: cm.Promo()}
}

// SplitInput turns a raw line-delimited stream into tokens. The whole stream is
// trimmed first; an empty stream yields no tokens. Interior blank lines are kept
// as empty tokens so they surface as parse errors at the right ply.
func SplitInput(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parseSquare(s string) (chess.Square, bool) {
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.NoSquare, false
	}
	return chess.Square(int(rank-'1')*8 + int(file-'a')), true
}

func parsePromo(c byte) (chess.PieceType, bool) {
	switch c {
	case 'q':
		return chess.Queen, true
	case 'r':
		return chess.Rook, true
	case 'b':
		return chess.Bishop, true
	case 'n':
		return chess.Knight, true
	default:
		return chess.NoPieceType, false
	}
}

// squareToString converts a Square to algebraic notation (e.g., "e2", "a8")
func squareToString(sq chess.Square) string {
	file := sq.File()
	rank := sq.Rank()

	fileChar := 'a' + rune(file)
	rankChar := '1' + rune(rank)

	return fmt.Sprintf("%c%c", fileChar, rankChar)
}
