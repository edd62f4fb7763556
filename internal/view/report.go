package view

// ReportKind distinguishes informational output from warnings
type ReportKind int

const (
	// ReportInfo carries the tool's output for an action
	ReportInfo ReportKind = iota

	// ReportWarning is raised before anything runs, e.g. nothing selected
	ReportWarning
)

// String returns the string representation of ReportKind
func (k ReportKind) String() string {
	if k == ReportWarning {
		return "warning"
	}
	return "info"
}

// Report is what the front-end shows the user after an operation
type Report struct {
	Kind  ReportKind
	Title string
	Text  string
}

const (
	noSelectionTitle = "No Module Selected"
	noSelectionText  = "Please select a module first."
)

func noSelectionReport() Report {
	return Report{
		Kind:  ReportWarning,
		Title: noSelectionTitle,
		Text:  noSelectionText,
	}
}

// IsNoSelection reports whether r is the "select a module first" warning
func (r Report) IsNoSelection() bool {
	return r.Kind == ReportWarning && r.Title == noSelectionTitle
}
