// Package dataset turns streams of independent positions into training
// samples for the network evaluator.
package dataset

import (
	"context"
	"io"
	"log"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/avoronov/merlin/pkg/common"
	"github.com/avoronov/merlin/pkg/engine"
	material "github.com/avoronov/merlin/pkg/eval/material"
	nn "github.com/avoronov/merlin/pkg/eval/nn"
)

// Item is one training sample: the active feature indices of a position
// and the search score assigned to it.
type Item struct {
	Features []int
	Target   float64
}

// Provider labels positions with a bounded search over the material
// evaluator. The network evaluator is never used here, so the samples
// carry no circular supervision. Positions must be independent
// instances; each worker owns its own engine.
type Provider struct {
	Depth   int
	Breadth int
	Threads int
	Source  func(ctx context.Context, positions chan<- common.Position) error
}

func (dp *Provider) Run(ctx context.Context, w io.Writer) error {
	log.Println("dataset generation started")
	defer log.Println("dataset generation finished")

	g, ctx := errgroup.WithContext(ctx)

	var positions = make(chan common.Position, 128)
	var items = make(chan Item, 128)

	g.Go(func() error {
		defer close(positions)
		return dp.Source(ctx, positions)
	})

	var wg = &sync.WaitGroup{}
	var threads = dp.Threads
	if threads < 1 {
		threads = 1
	}
	for i := 0; i < threads; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return dp.analyzePositions(ctx, positions, items)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(items)
		return nil
	})

	g.Go(func() error {
		return saveItems(w, items)
	})

	return g.Wait()
}

func (dp *Provider) analyzePositions(
	ctx context.Context,
	positions <-chan common.Position,
	items chan<- Item,
) error {
	var eng = engine.NewEngine(material.NewEvaluationService(), dp.Depth, dp.Breadth)
	for p := range positions {
		var target = eng.MiniMax(p, math.Inf(-1), math.Inf(1), dp.Depth, dp.Breadth)
		features, err := nn.ActiveFeatures(p.Board())
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case items <- Item{Features: features, Target: target}:
		}
	}
	return nil
}
