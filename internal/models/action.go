package models

// Action is a verb understood by the external module-manager tool
type Action string

const (
	// ActionLoad enables a module in the environment
	ActionLoad Action = "load"

	// ActionUnload disables a module
	ActionUnload Action = "unload"

	// ActionRestore re-applies the tool's default module set
	ActionRestore Action = "restore"

	// ActionStatus reports on a single module
	ActionStatus Action = "status"

	// ActionList reports the currently loaded modules
	ActionList Action = "list"
)

// IsValid checks if the action is one the tool understands
func (a Action) IsValid() bool {
	switch a {
	case ActionLoad, ActionUnload, ActionRestore, ActionStatus, ActionList:
		return true
	default:
		return false
	}
}

// RequiresModule reports whether the action takes a module argument.
// Actions that don't must be invoked without one.
func (a Action) RequiresModule() bool {
	switch a {
	case ActionLoad, ActionUnload, ActionStatus:
		return true
	default:
		return false
	}
}

// Mutates reports whether the action can change the set of loaded modules
func (a Action) Mutates() bool {
	switch a {
	case ActionLoad, ActionUnload, ActionRestore:
		return true
	default:
		return false
	}
}

// Title is the heading shown above the tool's output for this action
func (a Action) Title() string {
	switch a {
	case ActionLoad:
		return "Load Module"
	case ActionUnload:
		return "Unload Module"
	case ActionRestore:
		return "Restore Modules"
	case ActionStatus:
		return "Module Status"
	case ActionList:
		return "Loaded Modules"
	default:
		return string(a)
	}
}

// String returns the string representation of Action
func (a Action) String() string {
	return string(a)
}
