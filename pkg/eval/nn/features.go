package eval

import (
	"errors"
	"fmt"
)

const (
	boardSquares = 64
	pieceClasses = 12
	// FeatureSize is the length of the one-hot occupancy vector: 64
	// squares times 12 piece classes in absolute-color order
	// PNBRQK pnbrqk. Empty squares contribute the all-zero vector.
	FeatureSize = boardSquares * pieceClasses
)

// ErrInvalidEncoding is returned when a board encoding holds an
// unrecognized symbol or does not cover exactly 64 squares.
var ErrInvalidEncoding = errors.New("invalid board encoding")

// ActiveFeatures returns the indices of the set features of a board
// encoding, visiting squares in the order they are written (rank-major
// from rank 8).
func ActiveFeatures(board string) ([]int, error) {
	var result = make([]int, 0, 32)
	var sq int
	for _, ch := range board {
		switch {
		case ch == '/':
		case ch >= '1' && ch <= '8':
			sq += int(ch - '0')
		default:
			var class = pieceClass(ch)
			if class < 0 || sq >= boardSquares {
				return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, board)
			}
			result = append(result, sq*pieceClasses+class)
			sq++
		}
	}
	if sq != boardSquares {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, board)
	}
	return result, nil
}

// Features expands a board encoding to the dense one-hot input vector.
func Features(board string) ([]float64, error) {
	indices, err := ActiveFeatures(board)
	if err != nil {
		return nil, err
	}
	var result = make([]float64, FeatureSize)
	for _, index := range indices {
		result[index] = 1
	}
	return result, nil
}

func pieceClass(ch rune) int {
	switch ch {
	case 'P':
		return 0
	case 'N':
		return 1
	case 'B':
		return 2
	case 'R':
		return 3
	case 'Q':
		return 4
	case 'K':
		return 5
	case 'p':
		return 6
	case 'n':
		return 7
	case 'b':
		return 8
	case 'r':
		return 9
	case 'q':
		return 10
	case 'k':
		return 11
	}
	return -1
}
