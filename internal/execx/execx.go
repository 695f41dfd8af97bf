package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner abstracts external command execution so callers can be tested
// without real binaries on PATH.
type Runner interface {
	Run(ctx context.Context, dir string, stdin []byte, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// CommandRunner is the default Runner backed by exec.CommandContext.
type CommandRunner struct{}

// Run executes the command in dir, feeding stdin (may be nil) and
// collecting stdout and stderr separately.
func (CommandRunner) Run(ctx context.Context, dir string, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// IsNotFound reports whether err means the command could not be started,
// typically because the binary is not installed.
func IsNotFound(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr)
}

// DefaultRunner returns the process-backed CommandRunner.
func DefaultRunner() Runner {
	return CommandRunner{}
}
