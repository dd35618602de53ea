package dataset

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/avoronov/merlin/internal/game/testgame"
	"github.com/avoronov/merlin/pkg/common"
)

func TestProviderRun(t *testing.T) {
	var roots = []*testgame.Node{
		{
			Fen: "K7/8/8/8/8/8/8/k7",
			Children: []*testgame.Node{
				{Fen: "KQ6/8/8/8/8/8/8/k7"},
				{Fen: "K7/8/8/8/8/8/8/kq6"},
			},
		},
		{
			Fen: "KP6/8/8/8/8/8/8/k7",
			Children: []*testgame.Node{
				{Fen: "KP6/8/8/8/8/8/8/kn6"},
				{Fen: "KPB5/8/8/8/8/8/8/k7"},
			},
		},
	}

	var dp = &Provider{
		Depth:   1,
		Threads: 2,
		Source: func(ctx context.Context, positions chan<- common.Position) error {
			for _, root := range roots {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case positions <- testgame.NewPosition(root):
				}
			}
			return nil
		},
	}

	var buf bytes.Buffer
	if err := dp.Run(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	var got = strings.Fields(strings.TrimSpace(buf.String()))
	// lines are "indices score"; rejoin pairwise
	var lines []string
	for i := 0; i+1 < len(got); i += 2 {
		lines = append(lines, got[i]+" "+got[i+1])
	}
	sort.Strings(lines)

	// white to move picks the best child material: 9 and 4
	var want = []string{
		"5,12,683 4",
		"5,683 9",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %v lines: %v", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %v: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatItem(t *testing.T) {
	var got = FormatItem(Item{Features: []int{3, 17, 201}, Target: -2.5})
	if got != "3,17,201 -2.5" {
		t.Fatalf("got %q", got)
	}
}
