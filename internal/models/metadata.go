package models

// Metadata is the canonical per-module record shown to users.
// Field order matches the on-disk meta.yaml layout.
type Metadata struct {
	Description string   `yaml:"description"`
	Packages    []string `yaml:"packages"`
	Executables []string `yaml:"executables"`
}

// RawPackageSpec is the upstream package specification consumed by the
// normalizer. Description holds a summary line followed by "- exe" lines.
type RawPackageSpec struct {
	Description string   `yaml:"description"`
	Packages    []string `yaml:"packages"`
}

// MetadataStatus tells apart the three outcomes of loading metadata
type MetadataStatus int

const (
	// MetadataFound means the file existed and parsed
	MetadataFound MetadataStatus = iota

	// MetadataMissing means the module has no metadata file
	MetadataMissing

	// MetadataInvalid means the file existed but could not be read or parsed
	MetadataInvalid
)

// String returns the string representation of MetadataStatus
func (s MetadataStatus) String() string {
	switch s {
	case MetadataFound:
		return "found"
	case MetadataMissing:
		return "missing"
	case MetadataInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// MetadataResult is what the loader hands to the front-end.
// Metadata is set only for MetadataFound, Reason only for MetadataInvalid.
type MetadataResult struct {
	Module   string
	Status   MetadataStatus
	Metadata *Metadata
	Reason   string
}
