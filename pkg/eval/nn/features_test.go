package eval

import (
	"errors"
	"reflect"
	"testing"
)

const initialBoard = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

func TestActiveFeatures(t *testing.T) {
	got, err := ActiveFeatures(initialBoard)
	if err != nil {
		t.Fatal(err)
	}
	var want = []int{
		9, 19, 32, 46, 59, 68, 79, 93,
		102, 114, 126, 138, 150, 162, 174, 186,
		576, 588, 600, 612, 624, 636, 648, 660,
		675, 685, 698, 712, 725, 734, 745, 759,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFeaturesEmptyBoard(t *testing.T) {
	got, err := Features("8/8/8/8/8/8/8/8")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != FeatureSize {
		t.Fatalf("got %v features, want %v", len(got), FeatureSize)
	}
	for i, v := range got {
		if v != 0 {
			t.Fatalf("feature %v is %v, want 0", i, v)
		}
	}
}

func TestFeaturesDense(t *testing.T) {
	got, err := Features(initialBoard)
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for _, v := range got {
		sum += v
	}
	if sum != 32 {
		t.Fatalf("got %v set features, want 32", sum)
	}
	if got[9] != 1 || got[759] != 1 {
		t.Fatal("expected corner rooks set")
	}
}

func TestInvalidEncoding(t *testing.T) {
	var tests = []string{
		"8/8/8/8/8/8/8/7x", // unknown symbol
		"8/8",              // too few squares
		"9/8/8/8/8/8/8/8",  // bad empty run
		"8/8/8/8/8/8/8/8/8",
	}
	for _, board := range tests {
		if _, err := ActiveFeatures(board); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("%q: got %v, want ErrInvalidEncoding", board, err)
		}
	}
}
