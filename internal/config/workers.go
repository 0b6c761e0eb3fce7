package config

import (
	"os"
	"runtime"
	"strconv"
)

// Workers returns the number of goroutines a solver may use for
// data-parallel scans. AOC_WORKERS overrides the default of GOMAXPROCS;
// anything that is not a positive integer is ignored.
func Workers() int {
	workersStr, ok := os.LookupEnv("AOC_WORKERS")
	if !ok {
		return runtime.GOMAXPROCS(0)
	}
	workers, err := strconv.Atoi(workersStr)
	if err != nil || workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
