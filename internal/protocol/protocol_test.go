package protocol

import (
	"strings"
	"testing"

	"github.com/klauern/skilleval/internal/model"
)

func userSkill(name, desc string) model.Skill {
	return model.Skill{Name: name, Description: desc, Source: model.SourceUser}
}

func pluginSkill(name, desc, pluginName string) model.Skill {
	return model.Skill{
		Name:        name,
		Description: desc,
		Source:      model.SourcePlugin,
		Plugin:      &model.PluginInfo{Key: pluginName + "@skilleval", Name: pluginName},
	}
}

func TestRenderProtocolTextAlwaysPresent(t *testing.T) {
	tests := map[string]struct {
		skills []model.Skill
	}{
		"no skills":   {skills: nil},
		"one skill":   {skills: []model.Skill{userSkill("web-search", "searches the web")}},
		"many skills": {skills: []model.Skill{userSkill("a", "x"), pluginSkill("b", "y", "p")}},
	}

	required := []string{
		"<SKILL-ACTIVATION-PROTOCOL>",
		"</SKILL-ACTIVATION-PROTOCOL>",
		"## MANDATORY 3-Step Evaluation",
		"**Step 1 - EVALUATE**: List each skill → YES/NO (brief reason)",
		`**Step 2 - ACTIVATE**: IF any YES → Skill("[name]") for each. IF all NO → "No skills needed"`,
		"**Step 3 - IMPLEMENT**: Only after Step 2 complete.",
		"⚠️ CRITICAL: Evaluation without activation is WORTHLESS.",
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Render(tt.skills, Options{})
			for _, want := range required {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q", want)
				}
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	skills := []model.Skill{
		pluginSkill("zeta", "last", "bravo"),
		userSkill("mid", "middle"),
		pluginSkill("alpha", "first", "alpha-plugin"),
		userSkill("aaa", "early"),
	}

	first := Render(skills, Options{})

	// Same set, different input order.
	reordered := []model.Skill{skills[3], skills[0], skills[2], skills[1]}
	second := Render(reordered, Options{})

	if first != second {
		t.Errorf("output not deterministic across input orderings:\n%s\n---\n%s", first, second)
	}
}

func TestRenderSectionOrdering(t *testing.T) {
	skills := []model.Skill{
		pluginSkill("p-skill", "from plugin", "zeta-plugin"),
		pluginSkill("q-skill", "from plugin", "alpha-plugin"),
		{Name: "proj", Description: "project skill", Source: model.SourceProject},
		userSkill("u-skill", "user skill"),
	}

	got := Render(skills, Options{})

	sections := []string{
		"## Available Skills (user global)",
		"## Available Skills (project)",
		"## Available Skills (alpha-plugin)",
		"## Available Skills (zeta-plugin)",
	}

	last := -1
	for _, sec := range sections {
		idx := strings.Index(got, sec)
		if idx == -1 {
			t.Fatalf("output missing section %q", sec)
		}
		if idx < last {
			t.Errorf("section %q out of order", sec)
		}
		last = idx
	}
}

func TestRenderSkillLines(t *testing.T) {
	tests := map[string]struct {
		skills []model.Skill
		want   string
	}{
		"name and description": {
			skills: []model.Skill{userSkill("web-search", "searches the web")},
			want:   "- **web-search**: searches the web",
		},
		"empty description omits colon": {
			skills: []model.Skill{userSkill("bare", "")},
			want:   "- **bare**",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Render(tt.skills, Options{})
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestRenderSortsSkillsWithinSection(t *testing.T) {
	skills := []model.Skill{
		userSkill("zeta", "z"),
		userSkill("alpha", "a"),
		userSkill("mid", "m"),
	}

	got := Render(skills, Options{})

	alpha := strings.Index(got, "- **alpha**")
	mid := strings.Index(got, "- **mid**")
	zeta := strings.Index(got, "- **zeta**")
	if alpha == -1 || mid == -1 || zeta == -1 {
		t.Fatal("output missing expected skill lines")
	}
	if !(alpha < mid && mid < zeta) {
		t.Errorf("skills not sorted within section: alpha=%d mid=%d zeta=%d", alpha, mid, zeta)
	}
}

func TestRenderEmptySkillSet(t *testing.T) {
	got := Render(nil, Options{})

	if !strings.Contains(got, "No skills are currently installed.") {
		t.Error("empty set should state that no skills are installed")
	}
	if strings.Contains(got, "- **") {
		t.Error("empty set must not fabricate skill entries")
	}
	if !strings.Contains(got, "## MANDATORY 3-Step Evaluation") {
		t.Error("protocol instructions must still be present for an empty set")
	}
}

func TestRenderTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := Render([]model.Skill{userSkill("wordy", long)}, Options{})

	want := "- **wordy**: " + strings.Repeat("x", 97) + "..."
	if !strings.Contains(got, want) {
		t.Error("long description not truncated to 97 characters plus ellipsis")
	}
	if strings.Contains(got, strings.Repeat("x", 98)) {
		t.Error("description truncation did not apply")
	}
}

func TestRenderCustomDescriptionLimit(t *testing.T) {
	got := Render(
		[]model.Skill{userSkill("s", "abcdefghij")},
		Options{DescriptionLimit: 8},
	)
	if !strings.Contains(got, "- **s**: abcde...") {
		t.Errorf("custom description limit not applied:\n%s", got)
	}
}

func TestRenderDisabledSkills(t *testing.T) {
	skills := []model.Skill{
		userSkill("keep", "kept"),
		userSkill("drop", "dropped"),
	}

	got := Render(skills, Options{Disabled: map[string]bool{"drop": true}})

	if !strings.Contains(got, "- **keep**") {
		t.Error("enabled skill missing from output")
	}
	if strings.Contains(got, "- **drop**") {
		t.Error("disabled skill present in output")
	}
}

func TestRenderDisablingEverythingYieldsEmptyNotice(t *testing.T) {
	got := Render(
		[]model.Skill{userSkill("only", "one")},
		Options{Disabled: map[string]bool{"only": true}},
	)
	if !strings.Contains(got, "No skills are currently installed.") {
		t.Error("fully-disabled set should render the empty notice")
	}
}

func TestCount(t *testing.T) {
	skills := []model.Skill{
		userSkill("a", ""),
		userSkill("b", ""),
		pluginSkill("c", "", "p"),
	}

	if got := Count(skills, nil); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := Count(skills, map[string]bool{"b": true}); got != 2 {
		t.Errorf("Count() with disabled = %d, want 2", got)
	}
	if got := Count(nil, nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}
