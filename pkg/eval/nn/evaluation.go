package eval

import (
	"fmt"

	"github.com/avoronov/merlin/pkg/common"
)

// EvaluationService scores ongoing positions with the network. Finished
// positions get the same mate/draw constants as the material evaluator;
// the network is never asked to evaluate a terminal position.
type EvaluationService struct {
	MateValue float64
	net       *Network
}

func NewEvaluationService(net *Network) *EvaluationService {
	return &EvaluationService{MateValue: common.ValueMate, net: net}
}

func (e *EvaluationService) Evaluate(p common.Position) float64 {
	if score, gameOver := common.TerminalScore(p, e.MateValue); gameOver {
		return score
	}
	input, err := Features(p.Board())
	if err != nil {
		// a position always reports a well-formed encoding
		panic(fmt.Errorf("evaluate: %w", err))
	}
	return e.net.Forward(input)[0]
}
