package models

import "time"

// CommandResult is the outcome of one invocation of the module-manager tool.
//
// The tool reports success and failure only as text, so Output is the whole
// observable result. ExitCode is kept for logging and is -1 when the process
// could not be started at all.
type CommandResult struct {
	Action   Action
	Module   string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Output is stdout, a newline, then stderr
func (r *CommandResult) Output() string {
	return r.Stdout + "\n" + r.Stderr
}

// Args returns the argument vector passed to the tool
func (r *CommandResult) Args() []string {
	if r.Module == "" {
		return []string{string(r.Action)}
	}
	return []string{string(r.Action), r.Module}
}
