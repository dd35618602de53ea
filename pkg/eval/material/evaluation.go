package eval

import (
	"github.com/avoronov/merlin/pkg/common"
)

// EvaluationService scores positions by weighted material balance from
// White's perspective, independent of the side to move. Kings carry no
// weight.
type EvaluationService struct {
	MateValue float64
}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{MateValue: common.ValueMate}
}

func (e *EvaluationService) Evaluate(p common.Position) float64 {
	if score, gameOver := common.TerminalScore(p, e.MateValue); gameOver {
		return score
	}
	var eval float64
	for _, ch := range p.Board() {
		eval += pieceValue(ch)
	}
	return eval
}

func pieceValue(ch rune) float64 {
	switch ch {
	case 'P':
		return 1
	case 'N', 'B':
		return 3
	case 'R':
		return 5
	case 'Q':
		return 9
	case 'p':
		return -1
	case 'n', 'b':
		return -3
	case 'r':
		return -5
	case 'q':
		return -9
	}
	return 0
}
