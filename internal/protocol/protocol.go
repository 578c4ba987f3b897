// Package protocol renders the SKILL-ACTIVATION-PROTOCOL block that
// the hook injects into the assistant's context on every user prompt.
//
// Output is deterministic: for a fixed skill set, rendering always
// produces byte-identical text, with sections and skills in stable
// sorted order.
package protocol

import (
	"fmt"
	"sort"
	"strings"

	"github.com/klauern/skilleval/internal/model"
	"github.com/klauern/skilleval/internal/parser"
)

// DefaultDescriptionLimit is the maximum rendered description length
// in runes before truncation.
const DefaultDescriptionLimit = 100

// Section titles for non-plugin sources.
const (
	userSectionTitle    = "Available Skills (user global)"
	projectSectionTitle = "Available Skills (project)"
)

// emptyNotice is rendered in place of skill sections when no skills
// are installed. The protocol block itself is always emitted so the
// prompt pipeline never sees a hard failure from this hook.
const emptyNotice = "No skills are currently installed."

// protocolFooter is the mandatory evaluation instruction. It is
// emitted verbatim regardless of the skill set.
const protocolFooter = `## MANDATORY 3-Step Evaluation

**Step 1 - EVALUATE**: List each skill → YES/NO (brief reason)
**Step 2 - ACTIVATE**: IF any YES → Skill("[name]") for each. IF all NO → "No skills needed"
**Step 3 - IMPLEMENT**: Only after Step 2 complete.

⚠️ CRITICAL: Evaluation without activation is WORTHLESS.`

// Options controls rendering.
type Options struct {
	// DescriptionLimit caps rendered description length in runes.
	// Zero means DefaultDescriptionLimit.
	DescriptionLimit int
	// Disabled names skills excluded from the rendered output.
	Disabled map[string]bool
}

// Render produces the full SKILL-ACTIVATION-PROTOCOL block for the
// given skills.
func Render(skillSet []model.Skill, opts Options) string {
	limit := opts.DescriptionLimit
	if limit == 0 {
		limit = DefaultDescriptionLimit
	}

	sections := buildSections(skillSet, opts.Disabled)

	var body string
	if len(sections) == 0 {
		body = emptyNotice
	} else {
		rendered := make([]string, 0, len(sections))
		for _, sec := range sections {
			rendered = append(rendered, sec.render(limit))
		}
		body = strings.Join(rendered, "\n\n")
	}

	return fmt.Sprintf("<SKILL-ACTIVATION-PROTOCOL>\n\n%s\n\n%s\n\n</SKILL-ACTIVATION-PROTOCOL>", body, protocolFooter)
}

// Count returns the number of skills that would render, after
// filtering disabled names.
func Count(skillSet []model.Skill, disabled map[string]bool) int {
	n := 0
	for _, s := range skillSet {
		if !disabled[s.Name] {
			n++
		}
	}
	return n
}

type section struct {
	title  string
	rank   int // user=0, project=1, plugins=2; plugins tie-break on title
	skills []model.Skill
}

func (sec section) render(limit int) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(sec.title)
	for _, s := range sec.skills {
		b.WriteString("\n")
		if desc := parser.TruncateDescription(s.Description, limit); desc != "" {
			b.WriteString(fmt.Sprintf("- **%s**: %s", s.Name, desc))
		} else {
			b.WriteString(fmt.Sprintf("- **%s**", s.Name))
		}
	}
	return b.String()
}

// buildSections groups skills by source, drops disabled and empty
// groups, and sorts everything for stable output.
func buildSections(skillSet []model.Skill, disabled map[string]bool) []section {
	grouped := make(map[string]*section)

	for _, s := range skillSet {
		if disabled[s.Name] {
			continue
		}

		title, rank := sectionFor(s)
		sec, ok := grouped[title]
		if !ok {
			sec = &section{title: title, rank: rank}
			grouped[title] = sec
		}
		sec.skills = append(sec.skills, s)
	}

	out := make([]section, 0, len(grouped))
	for _, sec := range grouped {
		sort.Slice(sec.skills, func(a, b int) bool {
			return sec.skills[a].Name < sec.skills[b].Name
		})
		out = append(out, *sec)
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].rank != out[b].rank {
			return out[a].rank < out[b].rank
		}
		return out[a].title < out[b].title
	})

	return out
}

func sectionFor(s model.Skill) (title string, rank int) {
	switch s.Source {
	case model.SourceUser:
		return userSectionTitle, 0
	case model.SourceProject:
		return projectSectionTitle, 1
	default:
		return fmt.Sprintf("Available Skills (%s)", s.SourceLabel()), 2
	}
}
