package manager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/go-envmodules/internal/logging"
	"github.com/jakoblorz/go-envmodules/internal/models"
)

// waitDelay bounds how long Run waits for output pipes after a kill
const waitDelay = 2 * time.Second

// OSRunner implements Runner by executing the real tool
type OSRunner struct {
	ctx     context.Context
	path    string
	timeout time.Duration
	logger  *log.Logger
}

// Option configures an OSRunner
type Option func(*OSRunner)

// WithTimeout kills the tool after d. Zero means wait forever.
func WithTimeout(d time.Duration) Option {
	return func(r *OSRunner) {
		r.timeout = d
	}
}

// WithLogger sets the logger used for per-invocation debug lines
func WithLogger(logger *log.Logger) Option {
	return func(r *OSRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewOSRunner creates an OSRunner for the tool at path
func NewOSRunner(path string, opts ...Option) *OSRunner {
	if path == "" {
		path = DefaultPath
	}

	r := &OSRunner{
		ctx:    context.Background(),
		path:   path,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the tool being executed
func (r *OSRunner) Path() string {
	return r.path
}

// WithContext returns a new runner with the given context
func (r *OSRunner) WithContext(ctx context.Context) Runner {
	return &OSRunner{
		ctx:     ctx,
		path:    r.path,
		timeout: r.timeout,
		logger:  r.logger,
	}
}

// Run executes the tool with stdout and stderr captured separately
func (r *OSRunner) Run(action models.Action, module string) (*models.CommandResult, error) {
	if err := Validate(action, module); err != nil {
		return nil, err
	}

	ctx := r.ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	result := &models.CommandResult{
		Action: action,
		Module: module,
	}

	cmd := exec.CommandContext(ctx, r.path, result.Args()...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		// never started: missing binary, permissions, cancelled context
		result.ExitCode = -1
		result.Stderr = appendLine(result.Stderr, fmt.Sprintf("failed to run %s: %v", r.path, err))
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) && r.timeout > 0 {
		result.Stderr = appendLine(result.Stderr, fmt.Sprintf("%s %s timed out after %s", r.path, strings.Join(result.Args(), " "), r.timeout))
	}

	r.logger.Debug("module-manager finished",
		"action", action,
		"module", module,
		"exit", result.ExitCode,
		"duration", result.Duration,
	)

	return result, nil
}

func appendLine(text, line string) string {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + line
}
