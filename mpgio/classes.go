// SPDX-License-Identifier: MIT
package mpgio

import (
	"fmt"

	"github.com/katalvlaran/credmpg/mpg"
)

func decodeNodeClass(s string) (mpg.NodeClass, error) {
	switch s {
	case "seed":
		return mpg.ClassSeed, nil
	case "base":
		return mpg.ClassBase, nil
	case "epoch":
		return mpg.ClassEpoch, nil
	default:
		return 0, fmt.Errorf("mpgio: unknown node class %q", s)
	}
}

func decodeEdgeClass(s string) (mpg.EdgeClass, error) {
	switch s {
	case "base":
		return mpg.ClassBaseEdge, nil
	case "radiation":
		return mpg.ClassRadiation, nil
	case "minting":
		return mpg.ClassMinting, nil
	case "payout":
		return mpg.ClassPayout, nil
	case "webbing-forward":
		return mpg.ClassWebbingForward, nil
	case "webbing-backward":
		return mpg.ClassWebbingBackward, nil
	default:
		return 0, fmt.Errorf("mpgio: unknown edge class %q", s)
	}
}
