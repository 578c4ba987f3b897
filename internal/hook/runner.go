package hook

import (
	"errors"

	"github.com/klauern/skilleval/internal/logging"
	"github.com/klauern/skilleval/internal/model"
	"github.com/klauern/skilleval/internal/parser/skills"
	"github.com/klauern/skilleval/internal/plugins"
	"github.com/klauern/skilleval/internal/protocol"
	"github.com/klauern/skilleval/internal/util"
)

// ErrNoSkills is returned by Run in strict mode when no skills are
// installed anywhere.
var ErrNoSkills = errors.New("no skills found")

// Runner aggregates skills from every source and renders the
// activation protocol.
type Runner struct {
	// UserSkillsPath overrides the user-global skills directory.
	// Empty uses ~/.claude/skills.
	UserSkillsPath string
	// ProjectDir is the project directory to scan for .claude/skills.
	// Empty skips project skills entirely; callers decide whether the
	// payload cwd should be used.
	ProjectDir string
	// PluginsManifestPath overrides the installed plugins manifest.
	PluginsManifestPath string
	// Render controls protocol rendering.
	Render protocol.Options
	// Strict restores the original fail-on-empty behavior: Run returns
	// ErrNoSkills instead of emitting an empty protocol block.
	Strict bool
}

// Collect gathers skills from the user directory, the project
// directory, and installed plugins. Per-source failures degrade to an
// empty contribution; the hook never aborts the prompt pipeline over a
// discovery error.
func (r *Runner) Collect(projectDir string) []model.Skill {
	var out []model.Skill

	userPath := r.UserSkillsPath
	if userPath == "" {
		userPath = util.ClaudeUserSkillsPath()
	}
	out = append(out, parseQuietly(skills.New(userPath, model.SourceUser))...)

	if projectDir != "" {
		projectPath := util.ClaudeProjectSkillsPath(projectDir)
		out = append(out, parseQuietly(skills.New(projectPath, model.SourceProject))...)
	}

	pluginSkills, err := plugins.NewParser(r.PluginsManifestPath).Parse()
	if err != nil {
		logging.Warn("plugin skill discovery failed", logging.Err(err))
	} else {
		out = append(out, pluginSkills...)
	}

	return out
}

// Run executes the hook and returns the text to inject. In strict
// mode an empty skill set returns ErrNoSkills.
func (r *Runner) Run() (string, error) {
	collected := r.Collect(r.ProjectDir)

	if r.Strict && protocol.Count(collected, r.Render.Disabled) == 0 {
		return "", ErrNoSkills
	}

	logging.Debug("rendering activation protocol", logging.Count(len(collected)))

	return protocol.Render(collected, r.Render), nil
}

func parseQuietly(p *skills.Parser) []model.Skill {
	parsed, err := p.Parse()
	if err != nil {
		logging.Warn("skill discovery failed",
			logging.Source(string(p.Source())),
			logging.Path(p.BasePath()),
			logging.Err(err),
		)
		return nil
	}
	return parsed
}
