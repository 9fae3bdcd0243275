// Package shell provides a process runner for external toolchain invocations.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/cargostep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Toolchain using os/exec.
type Runner struct {
	logger  ports.Logger
	environ func() []string
}

// NewRunner creates a new Runner that inherits the process environment.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger:  logger,
		environ: os.Environ,
	}
}

// Run executes the invocation, capturing stdout and stderr separately.
func (r *Runner) Run(ctx context.Context, inv *domain.Invocation) (*domain.InvocationResult, error) {
	if len(inv.Args) == 0 {
		return nil, zerr.With(domain.ErrToolchainStartFailed, "reason", "empty command")
	}

	id := inv.ID()
	r.logger.Debug("running toolchain", "invocation_id", id, "dir", inv.Dir, "args", strings.Join(inv.Args, " "))

	//nolint:gosec // argv is assembled from driver options
	cmd := exec.CommandContext(ctx, inv.Args[0], inv.Args[1:]...)
	cmd.Dir = inv.Dir
	cmd.Env = resolveEnvironment(r.environ(), inv.Env, inv.PathAppend)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, zerr.With(zerr.Wrap(ctxErr, "toolchain interrupted"), "invocation_id", id)
	}

	result := &domain.InvocationResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrToolchainStartFailed.Error()), "command", inv.Args[0])
		}
		result.ExitCode = exitErr.ExitCode()
	}

	r.logger.Debug("toolchain exited", "invocation_id", id, "exit_code", result.ExitCode)
	return result, nil
}

// resolveEnvironment layers the overlay on top of the inherited environment
// and appends pathAppend to PATH. The result is sorted by key.
func resolveEnvironment(sysEnv []string, overlay map[string]string, pathAppend string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overlay))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for k, v := range overlay {
		envMap[k] = v
	}

	if pathAppend != "" {
		if sysPath := envMap["PATH"]; sysPath != "" {
			envMap["PATH"] = sysPath + string(os.PathListSeparator) + pathAppend
		} else {
			envMap["PATH"] = pathAppend
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
