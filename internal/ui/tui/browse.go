// Package tui provides the interactive skill browser built on BubbleTea.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/skilleval/internal/model"
)

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var browseStyles = struct {
	Title     lipgloss.Style
	Help      lipgloss.Style
	Filter    lipgloss.Style
	DetailBox lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Filter:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	DetailBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
}

const (
	browseNameWidth   = 25
	browseSourceWidth = 22
	browseDescWidth   = 50
	browseTableHeight = 15
)

var titleCaser = cases.Title(language.English)

// BrowseModel is the BubbleTea model for the skill browser.
type BrowseModel struct {
	table     table.Model
	skills    []model.Skill
	filtered  []model.Skill
	keys      browseKeyMap
	filter    string
	filtering bool
	width     int
	quitting  bool
}

// NewBrowseModel creates the browser over the given skills.
func NewBrowseModel(skills []model.Skill) BrowseModel {
	sort.Slice(skills, func(i, j int) bool {
		return strings.ToLower(skills[i].Name) < strings.ToLower(skills[j].Name)
	})

	m := BrowseModel{
		skills:   skills,
		filtered: skills,
		keys:     defaultBrowseKeyMap(),
	}

	t := table.New(
		table.WithColumns(browseColumns()),
		table.WithRows(skillRows(skills)),
		table.WithFocused(true),
		table.WithHeight(browseTableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	return m
}

func browseColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: browseNameWidth},
		{Title: "Source", Width: browseSourceWidth},
		{Title: "Description", Width: browseDescWidth},
	}
}

func skillRows(skills []model.Skill) []table.Row {
	rows := make([]table.Row, len(skills))
	for i, s := range skills {
		rows[i] = table.Row{
			truncateCell(s.Name, browseNameWidth),
			truncateCell(sourceCell(s), browseSourceWidth),
			truncateCell(s.Description, browseDescWidth),
		}
	}
	return rows
}

// sourceCell renders the source column: "User", "Project", or the
// plugin key for plugin-sourced skills.
func sourceCell(s model.Skill) string {
	if s.Source == model.SourcePlugin && s.Plugin != nil {
		return s.Plugin.Key
	}
	return titleCaser.String(s.Source.String())
}

func truncateCell(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.filter = ""
			m.applyFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BrowseModel) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.filtering = false
		if msg.Type == tea.KeyEsc {
			m.filter = ""
		}
		m.applyFilter()
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m *BrowseModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.skills
	} else {
		needle := strings.ToLower(m.filter)
		var filtered []model.Skill
		for _, s := range m.skills {
			if strings.Contains(strings.ToLower(s.Name), needle) ||
				strings.Contains(strings.ToLower(s.Description), needle) {
				filtered = append(filtered, s)
			}
		}
		m.filtered = filtered
	}
	m.table.SetRows(skillRows(m.filtered))
	m.table.GotoTop()
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(browseStyles.Title.Render("Skills"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(browseStyles.Filter.Render("/" + m.filter))
	} else if m.filter != "" {
		b.WriteString(browseStyles.Help.Render(fmt.Sprintf("filter: %s (%d/%d)  ", m.filter, len(m.filtered), len(m.skills))))
	}
	b.WriteString(browseStyles.Help.Render("↑/↓ navigate · / filter · q quit"))

	return b.String()
}

func (m BrowseModel) renderDetail() string {
	skill, ok := m.selectedSkill()
	if !ok {
		return browseStyles.DetailBox.Render("No skills to show.")
	}

	desc := strings.TrimSpace(skill.Description)
	if desc == "" {
		desc = "No description available."
	}

	width := m.width
	if width <= 0 {
		width = browseNameWidth + browseSourceWidth + browseDescWidth
	}

	detail := fmt.Sprintf("%s\n%s", lipgloss.NewStyle().Bold(true).Render(skill.Name), desc)
	if skill.Plugin != nil {
		detail += "\n" + browseStyles.Help.Render(fmt.Sprintf("from %s v%s", skill.Plugin.Key, skill.Plugin.Version))
	}

	return browseStyles.DetailBox.Width(width - 2).Render(detail)
}

func (m BrowseModel) selectedSkill() (model.Skill, bool) {
	if len(m.filtered) == 0 {
		return model.Skill{}, false
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.filtered) {
		return model.Skill{}, false
	}
	return m.filtered[cursor], true
}

// RunBrowse launches the interactive browser and blocks until quit.
func RunBrowse(skills []model.Skill) error {
	_, err := tea.NewProgram(NewBrowseModel(skills), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run skill browser: %w", err)
	}
	return nil
}
