package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/avoronov/merlin/internal/evalbuilder"
	"github.com/avoronov/merlin/internal/game"
	"github.com/avoronov/merlin/pkg/engine"
)

type Settings struct {
	Fen     string
	Depth   int
	Breadth int
	Eval    string
	NetPath string
	Play    bool
	MaxPly  int
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
		Depth:  4,
		Eval:   "material",
		MaxPly: 200,
	}

	flag.StringVar(&settings.Fen, "fen", settings.Fen, "Position to analyze (default: starting position)")
	flag.IntVar(&settings.Depth, "depth", settings.Depth, "Search depth in plies, negative for unbounded")
	flag.IntVar(&settings.Breadth, "breadth", settings.Breadth, "Moves searched per node, 0 for all")
	flag.StringVar(&settings.Eval, "eval", settings.Eval, "Evaluator: material or nn")
	flag.StringVar(&settings.NetPath, "net", settings.NetPath, "Path to flat network weights (eval=nn)")
	flag.BoolVar(&settings.Play, "play", settings.Play, "Play the game out instead of analyzing one move")
	flag.IntVar(&settings.MaxPly, "maxply", settings.MaxPly, "Ply limit for -play")
	flag.Parse()

	evaluator, err := evalbuilder.Build(settings.Eval, settings.NetPath)
	if err != nil {
		return err
	}

	var pos *game.Position
	if settings.Fen == "" {
		pos = game.StartingPosition()
	} else {
		pos, err = game.NewPosition(settings.Fen)
		if err != nil {
			return err
		}
	}

	var eng = engine.NewEngine(evaluator, settings.Depth, settings.Breadth)

	if !settings.Play {
		result, err := eng.BestMove(pos)
		if err != nil {
			return err
		}
		fmt.Printf("bestmove %v score %v\n", result.Move, result.Score)
		return nil
	}

	for ply := 0; ply < settings.MaxPly; ply++ {
		if pos.IsCheckmate() || pos.IsDraw() {
			break
		}
		result, err := eng.BestMove(pos)
		if err != nil {
			return err
		}
		fmt.Printf("%v %v score %v\n", ply+1, result.Move, result.Score)
		pos.MakeMove(result.Move)
	}
	fmt.Println(pos.FEN())
	return nil
}
