// Package testgame provides a scripted game tree implementing the
// engine's position contract, for tests that need full control over
// scores and terminal states without a board provider.
package testgame

import (
	"strconv"
	"strings"

	"github.com/avoronov/merlin/pkg/common"
)

// Node is one state of a scripted game.
type Node struct {
	Score    float64 // static evaluation, White's perspective
	Mate     bool
	Draw     bool
	Fen      string // board encoding reported by Board, may be empty
	Children []*Node
}

// Move indexes a child of the current node.
type Move int

func (m Move) String() string { return strconv.Itoa(int(m)) }

// Position walks a scripted tree in place.
type Position struct {
	path      []*Node
	moves     []int
	whiteMove bool
}

func NewPosition(root *Node) *Position {
	return NewPositionToMove(root, true)
}

func NewPositionToMove(root *Node, whiteMove bool) *Position {
	return &Position{path: []*Node{root}, whiteMove: whiteMove}
}

// Current returns the node the position currently stands on.
func (p *Position) Current() *Node { return p.path[len(p.path)-1] }

func (p *Position) GenerateMoves() []common.Move {
	var node = p.Current()
	if node.Mate || node.Draw {
		return nil
	}
	var result = make([]common.Move, len(node.Children))
	for i := range node.Children {
		result[i] = Move(i)
	}
	return result
}

func (p *Position) WhiteToMove() bool { return p.whiteMove }

func (p *Position) MakeMove(m common.Move) {
	var index = int(m.(Move))
	p.path = append(p.path, p.Current().Children[index])
	p.moves = append(p.moves, index)
	p.whiteMove = !p.whiteMove
}

func (p *Position) UnmakeMove() {
	p.path = p.path[:len(p.path)-1]
	p.moves = p.moves[:len(p.moves)-1]
	p.whiteMove = !p.whiteMove
}

func (p *Position) IsCheckmate() bool { return p.Current().Mate }

func (p *Position) IsDraw() bool { return p.Current().Draw }

// Board returns the node's scripted encoding when present, otherwise a
// synthetic encoding of the move path so restoration checks can compare
// observable state.
func (p *Position) Board() string {
	if fen := p.Current().Fen; fen != "" {
		return fen
	}
	var sb strings.Builder
	sb.WriteString("root")
	for _, index := range p.moves {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(index))
	}
	return sb.String()
}

// Eval scores positions by the scripted node values, honoring the
// mate/draw contract. Calls counts evaluations performed.
type Eval struct {
	MateValue float64
	Calls     int
}

func (e *Eval) Evaluate(p common.Position) float64 {
	e.Calls++
	var mateValue = e.MateValue
	if mateValue == 0 {
		mateValue = common.ValueMate
	}
	if score, gameOver := common.TerminalScore(p, mateValue); gameOver {
		return score
	}
	return p.(*Position).Current().Score
}
