// SPDX-License-Identifier: MIT

// Command simplealgebra evaluates matrix and tensor documents written in
// YAML: inverses, determinants, traces and Einstein contractions.
//
// Usage:
//
//	simplealgebra invert [--side left|right] [--reverse] FILE...
//	simplealgebra det FILE...
//	simplealgebra trace FILE
//	simplealgebra contract FILE
//
// Environment:
//
//	SIMPLEALGEBRA_LOG_LEVEL       debug|info|warn|error (default info)
//	SIMPLEALGEBRA_WORKERS         batch workers, 0 = GOMAXPROCS
//	SIMPLEALGEBRA_ZERO_TOLERANCE  |v| below this prints as 0 (default 1e-12)
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
