// Package discovery finds the modules available under a modules root.
package discovery

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/go-envmodules/internal/filesystem"
	"github.com/jakoblorz/go-envmodules/internal/logging"
)

// Discoverer lists module names from a root directory
type Discoverer struct {
	fs     filesystem.FileSystem
	root   string
	logger *log.Logger
}

// New creates a Discoverer for root
func New(fs filesystem.FileSystem, root string, logger *log.Logger) *Discoverer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Discoverer{
		fs:     fs,
		root:   root,
		logger: logger,
	}
}

// Modules returns the names of the root's immediate subdirectories, sorted.
//
// A missing or unreadable root is a valid "nothing installed" state, so the
// result is an empty slice rather than an error.
func (d *Discoverer) Modules() []string {
	entries, err := d.fs.ReadDir(d.root)
	if err != nil {
		d.logger.Debug("modules root not readable", "root", d.root, "err", err)
		return []string{}
	}

	modules := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		modules = append(modules, entry.Name())
	}

	sort.Strings(modules)
	return modules
}
