// Package skills parses SKILL.md files from a skills directory.
// Each skill lives in its own directory containing a SKILL.md with
// YAML (or TOML) frontmatter carrying name and description.
package skills

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauern/skilleval/internal/logging"
	"github.com/klauern/skilleval/internal/model"
	"github.com/klauern/skilleval/internal/parser"
)

// Parser discovers and parses skills from a directory tree.
type Parser struct {
	basePath string
	source   model.Source
}

// New creates a parser rooted at basePath. Discovered skills are
// attributed to the given source.
func New(basePath string, source model.Source) *Parser {
	return &Parser{basePath: basePath, source: source}
}

// BasePath returns the directory this parser scans.
func (p *Parser) BasePath() string {
	return p.basePath
}

// Source returns the source label attributed to parsed skills.
func (p *Parser) Source() model.Source {
	return p.source
}

// Parse discovers and parses all SKILL.md files under the base path.
// A missing directory yields an empty slice. Files that fail to parse
// are logged and skipped so a single bad skill never hides the rest.
func (p *Parser) Parse() ([]model.Skill, error) {
	files, err := parser.DiscoverSkillFiles(p.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to discover skills in %q: %w", p.basePath, err)
	}

	logging.Debug("discovered skill files",
		logging.Source(string(p.source)),
		logging.Path(p.basePath),
		logging.Count(len(files)),
	)

	out := make([]model.Skill, 0, len(files))
	for _, file := range files {
		skill, err := ParseSkillFile(file, p.source)
		if err != nil {
			logging.Warn("skipping unparseable skill file",
				logging.Path(file),
				logging.Err(err),
			)
			continue
		}
		out = append(out, skill)
	}

	return out, nil
}

// ParseSkillFile parses a single SKILL.md file into a Skill.
func ParseSkillFile(path string, source model.Source) (model.Skill, error) {
	// #nosec G304 - path comes from directory discovery under a configured base
	content, err := os.ReadFile(path)
	if err != nil {
		return model.Skill{}, fmt.Errorf("failed to read %q: %w", path, err)
	}

	skill, err := ParseSkillContent(content, source)
	if err != nil {
		return model.Skill{}, fmt.Errorf("%q: %w", path, err)
	}
	skill.Path = path

	if skill.Name == "" {
		skill.Name = filepath.Base(filepath.Dir(path))
	}
	if err := parser.ValidateSkillName(skill.Name); err != nil {
		return model.Skill{}, fmt.Errorf("invalid skill name in %q: %w", path, err)
	}

	if info, err := os.Stat(path); err == nil {
		skill.ModifiedAt = info.ModTime()
	}

	return skill, nil
}

// ParseSkillContent parses SKILL.md bytes. The skill name is left empty
// when the frontmatter does not provide one; callers derive it from the
// directory name.
func ParseSkillContent(content []byte, source model.Source) (model.Skill, error) {
	fm := parser.Split(content)

	skill := model.Skill{
		Source:   source,
		Metadata: make(map[string]string),
	}

	if fm.Format != parser.FormatNone {
		fields, err := fm.Decode()
		if err != nil {
			return model.Skill{}, err
		}

		skill.Name = parser.String(fields, "name")
		skill.Description = parser.String(fields, "description")

		for key, val := range fields {
			if key == "name" || key == "description" {
				continue
			}
			skill.Metadata[key] = parser.Stringify(val)
		}
	}

	return skill, nil
}
