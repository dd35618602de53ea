package eval

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// LoadParametersFile loads the network from a weights file: a flat
// sequence of little-endian float32 values in LoadParameters order, with
// no header.
func (n *Network) LoadParametersFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	values, err := readParameters(f)
	if err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}
	return n.LoadParameters(values)
}

func readParameters(r io.Reader) ([]float64, error) {
	var result []float64
	var buf [4]byte
	for {
		var _, err = io.ReadFull(r, buf[:])
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		result = append(result,
			float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))))
	}
}

// SaveParametersFile writes the parameters in LoadParameters order as
// little-endian float32 values.
func (n *Network) SaveParametersFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, l := range n.layers {
		for o := range l.weights {
			for _, w := range l.weights[o] {
				if err := writeFloat(f, w); err != nil {
					return err
				}
			}
			if err := writeFloat(f, l.biases[o]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFloat(w io.Writer, value float64) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(value)))
	var _, err = w.Write(buf[:])
	return err
}
