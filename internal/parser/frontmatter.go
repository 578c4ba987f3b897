// Package parser implements SKILL.md discovery and frontmatter parsing.
package parser

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the frontmatter encoding of a SKILL.md file.
type Format int

const (
	// FormatNone means the file carries no frontmatter.
	FormatNone Format = iota
	// FormatYAML is frontmatter delimited by --- lines.
	FormatYAML
	// FormatTOML is frontmatter delimited by +++ lines.
	FormatTOML
)

// Frontmatter holds the split result of a SKILL.md file.
type Frontmatter struct {
	Format Format
	// Raw is the frontmatter bytes between the delimiters, with line
	// endings normalized to \n. Nil when Format is FormatNone.
	Raw []byte
	// Body is the markdown content after the frontmatter.
	Body string
}

var (
	yamlDelim = []byte("---")
	tomlDelim = []byte("+++")
)

// Split separates frontmatter from body content. Content without an
// opening delimiter, or with an unterminated frontmatter block, is
// returned whole as Body with FormatNone.
func Split(content []byte) Frontmatter {
	if delimAtStart(content, yamlDelim) {
		return split(content, yamlDelim, FormatYAML)
	}
	if delimAtStart(content, tomlDelim) {
		return split(content, tomlDelim, FormatTOML)
	}
	return Frontmatter{Format: FormatNone, Body: string(content)}
}

// Decode parses the frontmatter into a key/value map according to its
// format. FormatNone decodes to an empty map.
func (f Frontmatter) Decode() (map[string]any, error) {
	switch f.Format {
	case FormatYAML:
		if len(f.Raw) == 0 {
			return map[string]any{}, nil
		}
		var out map[string]any
		if err := yaml.Unmarshal(f.Raw, &out); err != nil {
			return nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
		}
		if out == nil {
			out = map[string]any{}
		}
		return out, nil
	case FormatTOML:
		out := map[string]any{}
		if err := toml.Unmarshal(f.Raw, &out); err != nil {
			return nil, fmt.Errorf("failed to parse TOML frontmatter: %w", err)
		}
		return out, nil
	default:
		return map[string]any{}, nil
	}
}

// delimAtStart reports whether content opens with the delimiter on its
// own line.
func delimAtStart(content, delim []byte) bool {
	if !bytes.HasPrefix(content, delim) {
		return false
	}
	rest := content[len(delim):]
	return bytes.HasPrefix(rest, []byte("\n")) || bytes.HasPrefix(rest, []byte("\r\n"))
}

func split(content, delim []byte, format Format) Frontmatter {
	rest := content[len(delim):]
	rest = trimLeadingNewline(rest)

	var raw []byte
	var body []byte
	switch {
	case bytes.HasPrefix(rest, delim):
		// Empty frontmatter block.
		body = trimLeadingNewline(rest[len(delim):])
		raw = []byte{}
	default:
		idx := bytes.Index(rest, append([]byte("\n"), delim...))
		if idx == -1 {
			idx = bytes.Index(rest, append([]byte("\r\n"), delim...))
			if idx == -1 {
				// Unterminated frontmatter.
				return Frontmatter{Format: FormatNone, Body: string(content)}
			}
		}
		raw = rest[:idx]
		after := rest[idx:]
		after = trimLeadingNewline(after)
		body = trimLeadingNewline(after[len(delim):])
	}

	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	raw = bytes.TrimRight(raw, "\r\n")

	return Frontmatter{
		Format: format,
		Raw:    raw,
		Body:   string(body),
	}
}

func trimLeadingNewline(b []byte) []byte {
	if bytes.HasPrefix(b, []byte("\r\n")) {
		return b[2:]
	}
	if bytes.HasPrefix(b, []byte("\n")) {
		return b[1:]
	}
	return b
}

// String extracts a string value from a decoded frontmatter map.
func String(fm map[string]any, key string) string {
	if v, ok := fm[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Stringify renders any frontmatter value as a string, for storage in
// skill metadata.
func Stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
