package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/facets/internal/facets"
)

func main() {
	facets.Debug = os.Getenv("DEBUG") != ""
	facets.Gray = os.Getenv("GRAY") != ""
	facets.RAW = os.Getenv("RAW") != ""
	facets.UseBBox = os.Getenv("NO_BBOX") == ""
	facets.Progress = os.Getenv("QUIET") == ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := facets.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
