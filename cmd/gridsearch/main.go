// Command gridsearch runs the registered puzzle solvers.
//
//	gridsearch list
//	gridsearch run --year 2024 --day 16
//	gridsearch run --year 2025 --input-dir ./inputs
//
// Settings come from flags, GRIDSEARCH_* environment variables and an
// optional gridsearch.yaml, in that order of precedence.
package main

import (
	"os"

	_ "github.com/katalvlaran/gridsearch/y2024"
	_ "github.com/katalvlaran/gridsearch/y2025"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
