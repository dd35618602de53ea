package common

// ValueMate is the default score magnitude of a forced checkmate. Draws
// score exactly 0. Positive scores favor White.
const ValueMate = 1_000_000

// Move is one legal transition of a Position. Implementations must be
// comparable.
type Move interface {
	String() string
}

// Position is mutable game state with a side-to-move flag. The search
// never copies it; MakeMove mutates it in place and UnmakeMove restores
// the state prior to the matching MakeMove.
type Position interface {
	GenerateMoves() []Move
	WhiteToMove() bool
	MakeMove(m Move)
	UnmakeMove()
	IsCheckmate() bool
	IsDraw() bool
	// Board returns the compact textual board encoding: one letter per
	// piece, rank-major from rank 8, empty runs collapsed to digits,
	// ranks separated by '/'.
	Board() string
}

// Evaluator scores a position from White's perspective. Implementations
// must be pure.
type Evaluator interface {
	Evaluate(p Position) float64
}

// SearchResult is the move chosen by a search and the minimax value of
// the position after playing it.
type SearchResult struct {
	Move  Move
	Score float64
}

// TerminalScore reports the fixed score of a finished position: the mate
// value signed against the side to move (the side to move is the side
// that has been mated), or exactly 0 for a draw.
func TerminalScore(p Position, mateValue float64) (score float64, gameOver bool) {
	if p.IsCheckmate() {
		if p.WhiteToMove() {
			return -mateValue, true
		}
		return mateValue, true
	}
	if p.IsDraw() {
		return 0, true
	}
	return 0, false
}

// WithMove plays m on p, runs fn and restores p before returning, on
// every exit path.
func WithMove(p Position, m Move, fn func() float64) float64 {
	p.MakeMove(m)
	defer p.UnmakeMove()
	return fn()
}
