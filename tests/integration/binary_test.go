// Package integration provides integration tests for the status binary.
package integration

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

var (
	statusBinary     string
	statusBinaryOnce sync.Once
	statusBinaryErr  error
)

// getStatusBinary builds the status binary once and returns its path.
func getStatusBinary(t *testing.T) string {
	t.Helper()
	statusBinaryOnce.Do(func() {
		// Get module root directory
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			statusBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		tmpDir, err := os.MkdirTemp("", "status-test-*")
		if err != nil {
			statusBinaryErr = err
			return
		}
		statusBinary = filepath.Join(tmpDir, "status")

		cmd := exec.Command("go", "build", "-o", statusBinary, "./cmd/status")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			statusBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if statusBinaryErr != nil {
		t.Fatalf("failed to build status: %v", statusBinaryErr)
	}
	return statusBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

// result is the outcome of one CLI invocation.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// runStatus runs the binary against configDir with the given extra environment.
// The working directory is a fresh temp dir so no stray .env is picked up.
func runStatus(t *testing.T, configDir string, env []string, args ...string) result {
	t.Helper()

	cmd := exec.Command(getStatusBinary(t), append([]string{"--config-dir", configDir}, args...)...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(filterEnv(os.Environ(), "SLACK_TOKEN", "TOKEN", "QUICKSTATUS_HOME"), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := result{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("running status: %v", err)
		}
		res.exitCode = exitErr.ExitCode()
	}
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

// filterEnv returns a copy of env with the given keys removed.
func filterEnv(env []string, keys ...string) []string {
	result := make([]string, 0, len(env))
outer:
	for _, e := range env {
		for _, key := range keys {
			prefix := key + "="
			if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
				continue outer
			}
		}
		result = append(result, e)
	}
	return result
}
