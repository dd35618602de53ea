package eval

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParametersFileRoundTrip(t *testing.T) {
	var values = []float64{
		1, 2, 0.5,
		-1, 1, 0,
		1, -1, 0.25,
	}
	var net = NewNetwork(2, 2, 1)
	if err := net.LoadParameters(values); err != nil {
		t.Fatal(err)
	}

	var path = filepath.Join(t.TempDir(), "weights.bin")
	if err := net.SaveParametersFile(path); err != nil {
		t.Fatal(err)
	}

	var loaded = NewNetwork(2, 2, 1)
	if err := loaded.LoadParametersFile(path); err != nil {
		t.Fatal(err)
	}
	var input = []float64{1, 1}
	if got, want := loaded.Forward(input)[0], net.Forward(input)[0]; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadParametersFileWrongLength(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "weights.bin")
	// two float32 values, network needs nine
	if err := os.WriteFile(path, make([]byte, 8), 0o644); err != nil {
		t.Fatal(err)
	}
	var net = NewNetwork(2, 2, 1)
	if err := net.LoadParametersFile(path); !errors.Is(err, ErrParameterCount) {
		t.Fatalf("got %v, want ErrParameterCount", err)
	}
	if net.Loaded() {
		t.Fatal("failed load left network marked loaded")
	}
}
