package render

import "github.com/jakoblorz/go-envmodules/internal/models"

// Metadata renders the pane text for a load result. A nil result means
// nothing is selected.
func Metadata(result *models.MetadataResult) string {
	if result == nil {
		return "Select a module to see its description."
	}

	text, err := ExecuteDefaultTemplate("metadata", NewMetadataData(*result))
	if err != nil {
		return "failed to load metadata: " + err.Error()
	}
	return text
}
