package model

import "fmt"

// Source identifies where a skill was discovered.
type Source string

const (
	// SourceUser is the user-global skills directory (~/.claude/skills).
	SourceUser Source = "user"
	// SourceProject is the project-local skills directory (.claude/skills).
	SourceProject Source = "project"
	// SourcePlugin is a skill shipped by an installed plugin.
	SourcePlugin Source = "plugin"
)

// ParseSource converts a string to a Source.
func ParseSource(s string) (Source, error) {
	switch s {
	case "user":
		return SourceUser, nil
	case "project":
		return SourceProject, nil
	case "plugin":
		return SourcePlugin, nil
	default:
		return "", fmt.Errorf("unknown skill source: %q", s)
	}
}

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// IsValid returns true if the source is one of the known values.
func (s Source) IsValid() bool {
	switch s {
	case SourceUser, SourceProject, SourcePlugin:
		return true
	}
	return false
}
