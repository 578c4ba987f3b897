package plugins

import (
	"os"
	"path/filepath"

	"github.com/klauern/skilleval/internal/logging"
	"github.com/klauern/skilleval/internal/model"
	"github.com/klauern/skilleval/internal/parser"
	"github.com/klauern/skilleval/internal/parser/skills"
)

// SkillsDirName is the conventional skills directory inside a plugin
// installation.
const SkillsDirName = "skills"

// Parser discovers skills shipped by installed plugins. It reads the
// installed plugins manifest and scans each installation's skills/
// directory for SKILL.md files.
type Parser struct {
	manifestPath string
	index        *Index
}

// NewParser creates a parser using the installed plugins manifest at
// manifestPath. An empty path uses the default location.
func NewParser(manifestPath string) *Parser {
	return &Parser{manifestPath: manifestPath}
}

// NewParserWithIndex creates a parser over a pre-built index. Useful
// for tests that construct installations directly.
func NewParserWithIndex(index *Index) *Parser {
	return &Parser{index: index}
}

// Parse returns skills from all enabled plugin installations, in
// stable plugin-key order. Installations whose path is missing are
// skipped; individual skill parse failures are logged and skipped.
func (p *Parser) Parse() ([]model.Skill, error) {
	index := p.index
	if index == nil {
		index = LoadIndex(p.manifestPath)
	}

	if index.Len() == 0 {
		logging.Debug("no installed plugins found")
		return []model.Skill{}, nil
	}

	var out []model.Skill
	for _, entry := range index.Entries() {
		if _, err := os.Stat(entry.InstallPath); os.IsNotExist(err) {
			logging.Debug("plugin install path does not exist",
				logging.Plugin(entry.Key),
				logging.Path(entry.InstallPath),
			)
			continue
		}

		pluginSkills, err := p.parseInstallation(entry)
		if err != nil {
			logging.Warn("failed to scan plugin skills",
				logging.Plugin(entry.Key),
				logging.Path(entry.InstallPath),
				logging.Err(err),
			)
			continue
		}
		out = append(out, pluginSkills...)
	}

	logging.Debug("discovered plugin skills", logging.Count(len(out)))

	return out, nil
}

// parseInstallation scans one installation's skills directory.
func (p *Parser) parseInstallation(entry *Entry) ([]model.Skill, error) {
	skillsDir := filepath.Join(entry.InstallPath, SkillsDirName)

	files, err := parser.DiscoverSkillFiles(skillsDir)
	if err != nil {
		return nil, err
	}

	info := &model.PluginInfo{
		Key:         entry.Key,
		Name:        entry.Name,
		Marketplace: entry.Marketplace,
		Version:     entry.Version,
		InstallPath: entry.InstallPath,
		Scope:       entry.Scope,
	}

	var out []model.Skill
	for _, file := range files {
		skill, err := skills.ParseSkillFile(file, model.SourcePlugin)
		if err != nil {
			logging.Warn("skipping unparseable plugin skill",
				logging.Plugin(entry.Key),
				logging.Path(file),
				logging.Err(err),
			)
			continue
		}
		skill.Plugin = info
		out = append(out, skill)
	}

	return out, nil
}
