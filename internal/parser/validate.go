package parser

import (
	"fmt"
	"strings"
)

// ValidateSkillName checks if a skill name is valid. Valid names are
// non-empty, have no surrounding whitespace, and contain only
// alphanumerics, hyphens, underscores, colons, and slashes.
func ValidateSkillName(name string) error {
	if name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}

	if strings.TrimSpace(name) != name {
		return fmt.Errorf("skill name cannot have leading/trailing whitespace: %q", name)
	}

	for _, r := range name {
		if !isValidNameChar(r) {
			return fmt.Errorf("skill name contains invalid character %q: %q", r, name)
		}
	}

	return nil
}

func isValidNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == ':' || r == '/'
}

// TruncateDescription shortens a description to at most limit runes,
// replacing the tail with "..." when truncation occurs.
func TruncateDescription(desc string, limit int) string {
	if limit <= 3 {
		return desc
	}
	runes := []rune(desc)
	if len(runes) <= limit {
		return desc
	}
	return string(runes[:limit-3]) + "..."
}

// NormalizeContent trims surrounding whitespace and normalizes line
// endings to \n.
func NormalizeContent(content string) string {
	return strings.ReplaceAll(strings.TrimSpace(content), "\r\n", "\n")
}
