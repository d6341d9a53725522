// Package main is the entry point for the ridescore CLI.
package main

import (
	"github.com/eridehero/ridescore/cmd"
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/scorecache"
)

func main() {
	cmd.SetStoreManager(scorecache.Manager)

	err := cmd.Execute()

	// Flush persistence and profiling before deciding the exit path.
	scorecache.CloseCaching()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
