//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedRidescorePath holds the path to a shared ridescore binary built once for all tests.
	sharedRidescorePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// catalogPath is the fixture catalog used by all CLI integration tests,
// relative to the project root where commands run.
const catalogPath = "integration/testdata/catalog.json"

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getRidescoreBinary returns the path to the ridescore binary, building it once if needed.
func getRidescoreBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "ridescore-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		ridescorePath := filepath.Join(tempDir, "ridescore")
		buildCmd := exec.Command("go", "build", "-o", ridescorePath, "./cmd/ridescore")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build ridescore: %v", err))
		}

		sharedRidescorePath = ridescorePath
	})

	return sharedRidescorePath
}

func runRidescoreCommand(t *testing.T, args ...string) error {
	ridescorePath := getRidescoreBinary()
	cmd := exec.Command(ridescorePath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
