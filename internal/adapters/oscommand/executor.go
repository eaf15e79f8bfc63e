package oscommand

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kombee-technologies/wpsetup/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using os/exec.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs the named command with the given arguments and returns its
// stdout, stderr, and any error. The command is killed when ctx is done.
func (e *OSCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("executing '%s': %w. Stderr: %s", name, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}
