package engine

import (
	"testing"

	"github.com/avoronov/merlin/internal/game/testgame"
)

func TestSortedMoves(t *testing.T) {
	var root = &testgame.Node{
		Children: []*testgame.Node{
			{Score: 1},
			{Score: 4},
			{Score: 2},
		},
	}
	var tests = []struct {
		name      string
		whiteMove bool
		want      []testgame.Move
	}{
		{"white best-first", true, []testgame.Move{1, 2, 0}},
		{"black best-first", false, []testgame.Move{0, 2, 1}},
	}
	var orderer = &moveOrderService{evaluator: &testgame.Eval{}}
	for _, test := range tests {
		var p = testgame.NewPositionToMove(root, test.whiteMove)
		var before = p.Board()
		var moves = orderer.SortedMoves(p)
		if len(moves) != len(test.want) {
			t.Fatalf("%v: got %v moves, want %v", test.name, len(moves), len(test.want))
		}
		for i, want := range test.want {
			if moves[i] != want {
				t.Errorf("%v: move %v is %v, want %v", test.name, i, moves[i], want)
			}
		}
		if got := p.Board(); got != before {
			t.Errorf("%v: ordering left position at %v, want %v", test.name, got, before)
		}
	}
}
