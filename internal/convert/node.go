package convert

import (
	"github.com/corentings/chess/v2"
)

// Node is one ply of a game. The root holds the starting position and no move;
// every other node owns the move that led to it and the position after it.
type Node struct {
	Parent   *Node
	Ply      int
	Move     *chess.Move
	SAN      string
	Position *chess.Position
}

func newRoot(pos *chess.Position) *Node {
	return &Node{Position: pos}
}

// IsRoot reports whether the node is the starting position.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// addChild plays m from this node's position. m must come from the position's
// legal move list so its tags (check, capture, castle) are set for SAN.
func (n *Node) addChild(m *chess.Move) *Node {
	return &Node{
		Parent:   n,
		Ply:      n.Ply + 1,
		Move:     m,
		SAN:      chess.AlgebraicNotation{}.Encode(n.Position, m),
		Position: n.Position.Update(m),
	}
}

// MoveNumber is the PGN full-move number this ply belongs to. The root is 0.
func (n *Node) MoveNumber() int {
	return (n.Ply + 1) / 2
}

// Path returns the nodes from the first ply up to and including n.
func (n *Node) Path() []*Node {
	path := make([]*Node, n.Ply)
	for cur := n; cur != nil && !cur.IsRoot(); cur = cur.Parent {
		path[cur.Ply-1] = cur
	}
	return path
}

// At walks back to the ancestor at the given ply. It returns nil when ply is
// out of range.
func (n *Node) At(ply int) *Node {
	if ply < 0 || ply > n.Ply {
		return nil
	}
	cur := n
	for cur.Ply > ply {
		cur = cur.Parent
	}
	return cur
}
