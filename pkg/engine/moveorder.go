package engine

import (
	"sort"

	"github.com/avoronov/merlin/pkg/common"
)

type OrderedMove struct {
	Move  common.Move
	Score float64
}

type moveOrderService struct {
	evaluator common.Evaluator
}

// SortedMoves returns the legal moves best-first for the side to move,
// ranked by a one-ply lookahead through the evaluator. Order among equal
// scores is unspecified.
func (s *moveOrderService) SortedMoves(p common.Position) []common.Move {
	var moves = p.GenerateMoves()
	var items = make([]OrderedMove, len(moves))
	for i, m := range moves {
		var move = m
		items[i] = OrderedMove{
			Move: move,
			Score: common.WithMove(p, move, func() float64 {
				return s.evaluator.Evaluate(p)
			}),
		}
	}
	var whiteMove = p.WhiteToMove()
	sort.Slice(items, func(i, j int) bool {
		return better(items[i].Score, items[j].Score, whiteMove)
	})
	var result = make([]common.Move, len(items))
	for i := range items {
		result[i] = items[i].Move
	}
	return result
}

// better reports whether score a is strictly preferable to b for the
// side to move. White maximizes, Black minimizes.
func better(a, b float64, whiteMove bool) bool {
	if whiteMove {
		return a > b
	}
	return a < b
}
