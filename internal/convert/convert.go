// Package convert turns a sequence of UCI moves into a PGN game.
package convert

import (
	"sync"

	"github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"
	"github.com/vytor/uci2pgn/internal/errors"
	"github.com/vytor/uci2pgn/internal/pgn"
	"github.com/vytor/uci2pgn/internal/uci"
)

// Game is the result of a successful conversion: a linear chain of nodes
// from the starting position to the last played move.
type Game struct {
	root *Node
	last *Node
}

// Convert applies tokens in order from the standard starting position. It stops
// at the first token that is malformed (PARSE_ERROR) or cannot be played
// (ILLEGAL_MOVE); both carry the 1-based ply of the offending token.
func Convert(tokens []string) (*Game, error) {
	root := newRoot(chess.NewGame().Position())
	cur := root

	for i, token := range tokens {
		ply := i + 1

		m, err := uci.Parse(token)
		if err != nil {
			if appErr, ok := errors.As(err); ok {
				return nil, appErr.WithPly(ply)
			}
			return nil, err
		}

		legal := findLegal(cur.Position, m)
		if legal == nil {
			return nil, errors.NewIllegalMoveError(ply, token)
		}
		cur = cur.addChild(legal)
	}

	return &Game{root: root, last: cur}, nil
}

func findLegal(pos *chess.Position, m uci.Move) *chess.Move {
	legal := pos.ValidMoves()
	for i := range legal {
		if m.Matches(&legal[i]) {
			found := legal[i]
			return &found
		}
	}
	return nil
}

// Root returns the starting-position node.
func (g *Game) Root() *Node { return g.root }

// Last returns the node of the final ply, or the root for an empty game.
func (g *Game) Last() *Node { return g.last }

// Plies returns the number of half-moves played.
func (g *Game) Plies() int { return g.last.Ply }

// Position returns the final position.
func (g *Game) Position() *chess.Position { return g.last.Position }

// Mainline returns every played ply in order.
func (g *Game) Mainline() []*Node { return g.last.Path() }

// Moves returns the played moves in order.
func (g *Game) Moves() []*chess.Move {
	path := g.Mainline()
	moves := make([]*chess.Move, len(path))
	for i, n := range path {
		moves[i] = n.Move
	}
	return moves
}

// SAN returns the played moves in standard algebraic notation.
func (g *Game) SAN() []string {
	path := g.Mainline()
	sans := make([]string, len(path))
	for i, n := range path {
		sans[i] = n.SAN
	}
	return sans
}

var (
	bookOnce sync.Once
	book     *opening.BookECO
)

func ecoBook() *opening.BookECO {
	bookOnce.Do(func() {
		book = opening.NewBookECO()
	})
	return book
}

// Opening looks the mainline up in the ECO opening book.
func (g *Game) Opening() (code, title string, ok bool) {
	moves := g.Moves()
	if len(moves) == 0 {
		return "", "", false
	}
	found := ecoBook().Find(moves)
	if found == nil {
		return "", "", false
	}
	return found.Code(), found.Title(), true
}

// Option customizes PGN rendering.
type Option func(*options)

type options struct {
	openingTags bool
}

// WithOpeningTags adds ECO and Opening tags when the moves match a book line.
func WithOpeningTags() Option {
	return func(o *options) {
		o.openingTags = true
	}
}

// PGN renders the game with the seven tag roster left at default values.
func (g *Game) PGN(opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	out := pgn.Game{
		Tags:   pgn.DefaultTags(),
		Moves:  g.SAN(),
		Result: pgn.ResultUnknown,
	}
	if o.openingTags {
		if code, title, ok := g.Opening(); ok {
			out.SetTag("ECO", code)
			out.SetTag("Opening", title)
		}
	}
	return out.String()
}

// ToPGN converts tokens straight to PGN text.
func ToPGN(tokens []string, opts ...Option) (string, error) {
	g, err := Convert(tokens)
	if err != nil {
		return "", err
	}
	return g.PGN(opts...), nil
}
