package eval

import (
	"errors"
	"fmt"
)

// ErrParameterCount is returned by LoadParameters when the flat value
// sequence does not match the architecture's parameter count.
var ErrParameterCount = errors.New("parameter count mismatch")

type layer struct {
	weights [][]float64 // [output][input]
	biases  []float64
	relu    bool
}

// Network is a dense feed-forward net with a fixed architecture. Hidden
// layers use ReLU; the output layer is identity, so evaluations are an
// unconstrained regression value and may be negative.
type Network struct {
	layers []layer
	loaded bool
}

// NewNetwork builds a network from the neuron counts of each layer,
// inputs first: NewNetwork(768, 64, 1) has 768 inputs, one hidden layer
// of 64 and a single scalar output.
func NewNetwork(sizes ...int) *Network {
	var n = &Network{}
	for i := 1; i < len(sizes); i++ {
		var l = layer{
			weights: make([][]float64, sizes[i]),
			biases:  make([]float64, sizes[i]),
			relu:    i != len(sizes)-1,
		}
		for o := range l.weights {
			l.weights[o] = make([]float64, sizes[i-1])
		}
		n.layers = append(n.layers, l)
	}
	return n
}

// ParameterCount returns the number of scalars LoadParameters consumes:
// the sum over layers of outputs*(inputs+1).
func (n *Network) ParameterCount() int {
	var count int
	for _, l := range n.layers {
		count += len(l.biases) * (len(l.weights[0]) + 1)
	}
	return count
}

// Loaded reports whether the network holds a parameter set.
func (n *Network) Loaded() bool { return n.loaded }

// LoadParameters fills the network from a flat sequence: for each layer,
// for each output neuron in order, all of its input weights in input
// order immediately followed by that neuron's bias.
func (n *Network) LoadParameters(values []float64) error {
	if len(values) != n.ParameterCount() {
		return fmt.Errorf("%w: want %v values, got %v",
			ErrParameterCount, n.ParameterCount(), len(values))
	}
	var next int
	for _, l := range n.layers {
		for o := range l.weights {
			next += copy(l.weights[o], values[next:])
			l.biases[o] = values[next]
			next++
		}
	}
	n.loaded = true
	return nil
}

// Forward applies the layers in declaration order and returns the last
// layer's activations.
func (n *Network) Forward(input []float64) []float64 {
	for _, l := range n.layers {
		var output = make([]float64, len(l.biases))
		for o := range output {
			var x = l.biases[o]
			for i, w := range l.weights[o] {
				x += w * input[i]
			}
			if l.relu && x < 0 {
				x = 0
			}
			output[o] = x
		}
		input = output
	}
	return input
}
