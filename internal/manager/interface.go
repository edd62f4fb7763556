// Package manager invokes the external module-manager tool.
package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/jakoblorz/go-envmodules/internal/models"
)

// DefaultPath is where the module-manager tool is installed on the cluster
const DefaultPath = "/usr/local/bin/module-manager"

var (
	// ErrUnknownAction is returned for actions the tool does not understand
	ErrUnknownAction = errors.New("unknown action")

	// ErrModuleRequired is returned when load, unload or status get no module
	ErrModuleRequired = errors.New("action requires a module")

	// ErrModuleNotAllowed is returned when restore or list get a module
	ErrModuleNotAllowed = errors.New("action does not take a module")
)

// Runner provides an abstraction over the module-manager tool for testability
//
// IMPORTANT: Run only fails on invalid arguments. Whatever the tool does,
// including exiting non-zero or failing to start, is folded into the
// returned CommandResult's text. The tool has no structured success or
// failure contract, so callers show the text and nothing else.
type Runner interface {
	// Run invokes `<tool> <action> [<module>]` and blocks until it exits
	Run(action models.Action, module string) (*models.CommandResult, error)

	// WithContext returns a runner whose invocations are bound to ctx
	WithContext(ctx context.Context) Runner
}

// Validate checks an action/module pair before anything is executed
func Validate(action models.Action, module string) error {
	if !action.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if action.RequiresModule() && module == "" {
		return fmt.Errorf("%w: %s", ErrModuleRequired, action)
	}
	if !action.RequiresModule() && module != "" {
		return fmt.Errorf("%w: %s %s", ErrModuleNotAllowed, action, module)
	}
	return nil
}
