package manifest

// HookCommand is a single hook action: the host runs the command and
// consumes its stdout.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// HookMatcher groups hook commands under an optional tool/event
// matcher. UserPromptSubmit bindings use no matcher.
type HookMatcher struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []HookCommand `json:"hooks"`
}

// Hooks is a plugin's hooks/hooks.json file: lifecycle event name to
// matcher groups.
type Hooks struct {
	Hooks map[string][]HookMatcher `json:"hooks"`
}

// LoadHooks reads and parses a hooks.json file.
func LoadHooks(path string) (*Hooks, error) {
	var h Hooks
	if err := loadJSON(path, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Commands returns the flattened hook commands bound to an event.
func (h *Hooks) Commands(event string) []HookCommand {
	var out []HookCommand
	for _, matcher := range h.Hooks[event] {
		out = append(out, matcher.Hooks...)
	}
	return out
}
