// Package game adapts the notnil/chess board library to the engine's
// position contract.
package game

import (
	"github.com/notnil/chess"

	"github.com/avoronov/merlin/pkg/common"
)

// Position presents a notnil/chess position as in-place mutable state.
// The library's Update is persistent, so apply pushes the derived
// position onto a stack and undo pops it.
type Position struct {
	stack []*chess.Position
}

func StartingPosition() *Position {
	return &Position{stack: []*chess.Position{chess.StartingPosition()}}
}

func NewPosition(fen string) (*Position, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	var g = chess.NewGame(option)
	return &Position{stack: []*chess.Position{g.Position()}}, nil
}

func (p *Position) current() *chess.Position { return p.stack[len(p.stack)-1] }

func (p *Position) GenerateMoves() []common.Move {
	var moves = p.current().ValidMoves()
	var result = make([]common.Move, len(moves))
	for i, m := range moves {
		result[i] = m
	}
	return result
}

func (p *Position) WhiteToMove() bool {
	return p.current().Turn() == chess.White
}

func (p *Position) MakeMove(m common.Move) {
	p.stack = append(p.stack, p.current().Update(m.(*chess.Move)))
}

func (p *Position) UnmakeMove() {
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Position) IsCheckmate() bool {
	return p.current().Status() == chess.Checkmate
}

func (p *Position) IsDraw() bool {
	return p.current().Status() == chess.Stalemate
}

func (p *Position) Board() string {
	return p.current().Board().String()
}

// FEN returns the full position encoding, for logging and snapshots.
func (p *Position) FEN() string {
	return p.current().String()
}
