// Package view keeps the module browser's state in step with the
// module-manager tool.
//
// Every action that can change the loaded set is followed by a fresh `list`
// call, and the loaded-modules text is replaced with that output. The text
// is never patched from the action's own output, so it cannot drift from
// what the tool reports even when an action partially fails.
package view

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/go-envmodules/internal/logging"
	"github.com/jakoblorz/go-envmodules/internal/manager"
	"github.com/jakoblorz/go-envmodules/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrNotVisible is returned when selecting a module outside the visible list
var ErrNotVisible = errors.New("module is not in the visible list")

// Discoverer lists the modules currently installed
type Discoverer interface {
	Modules() []string
}

// MetadataSource loads metadata for a module
type MetadataSource interface {
	Load(module string) models.MetadataResult
}

// State is a snapshot of what the front-end displays
type State struct {
	Modules  []string
	Query    string
	Visible  []string
	Selected string
	Loaded   string
}

// Option configures a SyncedView
type Option func(*SyncedView)

// WithLogger sets the logger for action traces
func WithLogger(logger *log.Logger) Option {
	return func(v *SyncedView) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// SyncedView owns the browser state and is the only thing that changes it
type SyncedView struct {
	runner     manager.Runner
	loader     MetadataSource
	discoverer Discoverer
	logger     *log.Logger

	// runMu keeps one tool process in flight and makes action+list atomic
	runMu sync.Mutex

	mu        sync.Mutex
	modules   []string
	query     string
	visible   []string
	selection Selection
	loaded    string
}

// New creates a SyncedView. Call Init before use.
func New(runner manager.Runner, loader MetadataSource, discoverer Discoverer, opts ...Option) *SyncedView {
	v := &SyncedView{
		runner:     runner,
		loader:     loader,
		discoverer: discoverer,
		logger:     logging.Discard(),
		modules:    []string{},
		visible:    []string{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Init discovers modules and fetches the initial loaded list
func (v *SyncedView) Init() {
	v.Rediscover()
	v.Refresh()
}

// Rediscover re-reads the modules root and re-applies the current query
func (v *SyncedView) Rediscover() []string {
	modules := v.discoverer.Modules()

	v.mu.Lock()
	defer v.mu.Unlock()

	v.modules = modules
	v.applyQueryLocked()
	return cloneStrings(v.visible)
}

// SetQuery recomputes the visible modules for query and returns them.
// A selection that falls out of view is cleared.
func (v *SyncedView) SetQuery(query string) []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.query = query
	v.applyQueryLocked()
	return cloneStrings(v.visible)
}

func (v *SyncedView) applyQueryLocked() {
	v.visible = Filter(v.modules, v.query)
	if v.selection.Clamp(v.visible) {
		v.logger.Debug("selection cleared by filter", "query", v.query)
	}
}

// Select picks a module from the visible list
func (v *SyncedView) Select(name string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.selection.Select(name, v.visible) {
		return fmt.Errorf("%w: %q", ErrNotVisible, name)
	}
	return nil
}

// SelectIndex picks the i-th visible module
func (v *SyncedView) SelectIndex(i int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if i < 0 || i >= len(v.visible) {
		return fmt.Errorf("%w: index %d of %d", ErrNotVisible, i, len(v.visible))
	}
	v.selection.Select(v.visible[i], v.visible)
	return nil
}

// ClearSelection drops the current selection
func (v *SyncedView) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Clear()
}

// Selected returns the selected module, if any
func (v *SyncedView) Selected() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Name()
}

// Load loads the selected module, then refreshes the loaded list
func (v *SyncedView) Load() Report {
	return v.mutate(models.ActionLoad)
}

// Unload unloads the selected module, then refreshes the loaded list
func (v *SyncedView) Unload() Report {
	return v.mutate(models.ActionUnload)
}

// Restore re-applies the default module set, then refreshes the loaded list.
// It does not need a selection.
func (v *SyncedView) Restore() Report {
	return v.mutate(models.ActionRestore)
}

// Status reports on the selected module. It is read-only, so the loaded
// list is left alone.
func (v *SyncedView) Status() Report {
	module, ok := v.Selected()
	if !ok {
		return noSelectionReport()
	}

	v.runMu.Lock()
	defer v.runMu.Unlock()

	return v.invoke(v.opLogger(models.ActionStatus, module), models.ActionStatus, module)
}

// Perform dispatches a mutating action or status by name
func (v *SyncedView) Perform(action models.Action) Report {
	switch {
	case !action.IsValid():
		return Report{Kind: ReportWarning, Title: "Unknown Action", Text: fmt.Sprintf("unknown action %q", action)}
	case action == models.ActionStatus:
		return v.Status()
	case action == models.ActionList:
		return Report{Kind: ReportInfo, Title: action.Title(), Text: v.Refresh()}
	default:
		return v.mutate(action)
	}
}

func (v *SyncedView) mutate(action models.Action) Report {
	var module string
	if action.RequiresModule() {
		selected, ok := v.Selected()
		if !ok {
			return noSelectionReport()
		}
		module = selected
	}

	v.runMu.Lock()
	defer v.runMu.Unlock()

	logger := v.opLogger(action, module)
	report := v.invoke(logger, action, module)

	// unconditional: the text above is not inspected for success
	v.refreshLocked(logger)

	return report
}

func (v *SyncedView) invoke(logger *log.Logger, action models.Action, module string) Report {
	result, err := v.runner.Run(action, module)
	if err != nil {
		logger.Warn("module-manager rejected arguments", "err", err)
		return Report{Kind: ReportWarning, Title: action.Title(), Text: err.Error()}
	}

	logger.Info("module-manager ran", "exit", result.ExitCode, "duration", result.Duration)
	return Report{Kind: ReportInfo, Title: action.Title(), Text: result.Output()}
}

// Refresh asks the tool for the loaded list and replaces the loaded text
func (v *SyncedView) Refresh() string {
	v.runMu.Lock()
	defer v.runMu.Unlock()

	return v.refreshLocked(v.opLogger(models.ActionList, ""))
}

// refreshLocked must be called with runMu held
func (v *SyncedView) refreshLocked(logger *log.Logger) string {
	result, err := v.runner.Run(models.ActionList, "")

	var text string
	if err != nil {
		text = err.Error()
	} else {
		text = result.Output()
	}

	v.mu.Lock()
	v.loaded = text
	v.mu.Unlock()

	logger.Debug("loaded list refreshed", "bytes", len(text))
	return text
}

// Loaded returns the last loaded-modules text
func (v *SyncedView) Loaded() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// Metadata loads metadata for the selected module.
// It returns nil when nothing is selected.
func (v *SyncedView) Metadata() *models.MetadataResult {
	module, ok := v.Selected()
	if !ok {
		return nil
	}

	result := v.loader.Load(module)
	return &result
}

// State returns a copy of the current state
func (v *SyncedView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	selected, _ := v.selection.Name()
	return State{
		Modules:  cloneStrings(v.modules),
		Query:    v.query,
		Visible:  cloneStrings(v.visible),
		Selected: selected,
		Loaded:   v.loaded,
	}
}

func (v *SyncedView) opLogger(action models.Action, module string) *log.Logger {
	id, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		id = "-"
	}

	logger := v.logger.With("op", id, "action", action)
	if module != "" {
		logger = logger.With("module", module)
	}
	return logger
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
