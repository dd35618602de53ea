package evalbuilder

import (
	"fmt"

	"github.com/avoronov/merlin/pkg/common"
	material "github.com/avoronov/merlin/pkg/eval/material"
	nn "github.com/avoronov/merlin/pkg/eval/nn"
)

// hiddenSize fixes the architecture of the shipped network evaluator:
// 768 one-hot inputs, one hidden layer, scalar output.
const hiddenSize = 64

// Build returns the evaluator selected by key: "material", or "nn" with
// the path to a flat weights file.
func Build(key, netPath string) (common.Evaluator, error) {
	switch key {
	case "", "material":
		return material.NewEvaluationService(), nil
	case "nn":
		var net = nn.NewNetwork(nn.FeatureSize, hiddenSize, 1)
		if err := net.LoadParametersFile(netPath); err != nil {
			return nil, err
		}
		return nn.NewEvaluationService(net), nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
