package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strings"

	"github.com/avoronov/merlin/internal/dataset"
	"github.com/avoronov/merlin/internal/game"
	"github.com/avoronov/merlin/pkg/common"
	material "github.com/avoronov/merlin/pkg/eval/material"
)

type Settings struct {
	Input   string
	Output  string
	Depth   int
	Breadth int
	Threads int
	Games   int
	Ply     int
	Seed    int64
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	var settings = Settings{
		Output:  "dataset.txt",
		Depth:   4,
		Threads: max(1, runtime.NumCPU()/2),
		Games:   1000,
		Ply:     16,
		Seed:    1,
	}

	flag.StringVar(&settings.Input, "input", settings.Input, "Path to FEN file (default: random playouts)")
	flag.StringVar(&settings.Output, "output", settings.Output, "Path to output dataset file")
	flag.IntVar(&settings.Depth, "depth", settings.Depth, "Search depth per position")
	flag.IntVar(&settings.Breadth, "breadth", settings.Breadth, "Moves searched per node, 0 for all")
	flag.IntVar(&settings.Threads, "threads", settings.Threads, "Number of threads")
	flag.IntVar(&settings.Games, "games", settings.Games, "Number of random playouts")
	flag.IntVar(&settings.Ply, "ply", settings.Ply, "Playout length in plies")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "Playout random seed")
	flag.Parse()

	log.Printf("%+v", settings)

	out, err := os.Create(settings.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	var source func(ctx context.Context, positions chan<- common.Position) error
	if settings.Input != "" {
		source = fenFileSource(settings.Input)
	} else {
		source = randomPlayoutSource(settings.Games, settings.Ply, settings.Seed)
	}

	var dp = &dataset.Provider{
		Depth:   settings.Depth,
		Breadth: settings.Breadth,
		Threads: settings.Threads,
		Source:  source,
	}
	return dp.Run(context.Background(), out)
}

func fenFileSource(path string) func(context.Context, chan<- common.Position) error {
	return func(ctx context.Context, positions chan<- common.Position) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		var count int
		var scanner = bufio.NewScanner(f)
		for scanner.Scan() {
			var line = strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			p, err := game.NewPosition(line)
			if err != nil {
				return fmt.Errorf("%v: %w", line, err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case positions <- p:
				count++
			}
		}
		log.Println("fenFileSource",
			"count", count)
		return scanner.Err()
	}
}

// randomPlayoutSource plays random moves from the starting position and
// emits the end state of each playout when it is still an ongoing,
// roughly balanced game.
func randomPlayoutSource(games, ply int, seed int64) func(context.Context, chan<- common.Position) error {
	return func(ctx context.Context, positions chan<- common.Position) error {
		const evalBound = 7
		var rnd = rand.New(rand.NewSource(seed))
		var evaluator = material.NewEvaluationService()
		var count int
		for i := 0; i < games; i++ {
			var p = game.StartingPosition()
			for height := 0; height < ply; height++ {
				var moves = p.GenerateMoves()
				if len(moves) == 0 {
					break
				}
				p.MakeMove(moves[rnd.Intn(len(moves))])
			}
			if p.IsCheckmate() || p.IsDraw() {
				continue
			}
			var eval = evaluator.Evaluate(p)
			if eval <= -evalBound || eval >= evalBound {
				continue
			}
			// workers must not share the playout instance
			snapshot, err := game.NewPosition(p.FEN())
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case positions <- snapshot:
				count++
			}
		}
		log.Println("randomPlayoutSource",
			"count", count)
		return nil
	}
}
