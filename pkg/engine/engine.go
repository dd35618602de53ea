package engine

import (
	"errors"
	"math"

	"github.com/avoronov/merlin/pkg/common"
)

// ErrNoLegalMoves is returned by BestMove when the position has no legal
// move. Callers are expected to check game-over state before searching.
var ErrNoLegalMoves = errors.New("no legal moves")

// Engine is a depth/breadth bounded minimax searcher with alpha-beta
// pruning. The breadth bound is heuristic forward pruning: moves ranked
// below it by the order service are never visited at all.
type Engine struct {
	maxDepth   int
	maxBreadth int
	evaluator  common.Evaluator
	orderer    *moveOrderService
}

// NewEngine builds an engine around the given evaluator. A negative
// maxDepth removes the depth bound; a maxBreadth below 1 removes the
// breadth bound.
func NewEngine(evaluator common.Evaluator, maxDepth, maxBreadth int) *Engine {
	return &Engine{
		maxDepth:   maxDepth,
		maxBreadth: maxBreadth,
		evaluator:  evaluator,
		orderer:    &moveOrderService{evaluator: evaluator},
	}
}

// BestMove returns the best move for the side to move together with the
// minimax value of the position after playing it. The position is left
// exactly as it was passed in.
func (e *Engine) BestMove(p common.Position) (common.SearchResult, error) {
	var moves = limitBreadth(e.orderer.SortedMoves(p), e.maxBreadth)
	if len(moves) == 0 {
		return common.SearchResult{}, ErrNoLegalMoves
	}
	var depth = e.maxDepth
	if depth > 0 {
		depth--
	}
	var (
		whiteMove = p.WhiteToMove()
		alpha     = math.Inf(-1)
		beta      = math.Inf(1)
		best      common.SearchResult
	)
	for i, m := range moves {
		var move = m
		var score = common.WithMove(p, move, func() float64 {
			return e.MiniMax(p, alpha, beta, depth, e.maxBreadth)
		})
		if i == 0 || better(score, best.Score, whiteMove) {
			best = common.SearchResult{Move: move, Score: score}
			if whiteMove {
				alpha = score
			} else {
				beta = score
			}
		}
	}
	return best, nil
}

// MiniMax returns the minimax value of p searched to the remaining depth
// and breadth inside the (alpha, beta) window. It is fail-soft: the
// returned value is the best value actually found, not a clamped bound.
// Exported so offline tooling can score a position without extracting a
// move.
func (e *Engine) MiniMax(p common.Position, alpha, beta float64, depth, breadth int) float64 {
	if depth == 0 || p.IsCheckmate() || p.IsDraw() {
		return e.evaluator.Evaluate(p)
	}
	if depth > 0 {
		depth--
	}
	var moves = limitBreadth(e.orderer.SortedMoves(p), breadth)
	var whiteMove = p.WhiteToMove()
	var best = math.Inf(1)
	if whiteMove {
		best = math.Inf(-1)
	}
	for _, m := range moves {
		var move = m
		var score = common.WithMove(p, move, func() float64 {
			return e.MiniMax(p, alpha, beta, depth, breadth)
		})
		if better(score, best, whiteMove) {
			best = score
			if whiteMove {
				alpha = best
			} else {
				beta = best
			}
		}
		if alpha > beta {
			break
		}
	}
	return best
}

func limitBreadth(moves []common.Move, breadth int) []common.Move {
	if breadth >= 1 && breadth < len(moves) {
		return moves[:breadth]
	}
	return moves
}
