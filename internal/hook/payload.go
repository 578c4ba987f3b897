// Package hook implements the UserPromptSubmit hook: it aggregates
// skills from every source and emits the activation protocol block for
// the host to inject into model context.
package hook

import (
	"encoding/json"
	"io"

	"github.com/klauern/skilleval/internal/logging"
)

// EventUserPromptSubmit is the hook lifecycle event this tool binds to.
const EventUserPromptSubmit = "UserPromptSubmit"

// Payload is the JSON the host writes to the hook's stdin on each
// prompt submission. All fields are advisory: the hook works without
// any of them.
type Payload struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
	Prompt         string `json:"prompt"`
}

// ReadPayload decodes the host payload from r. A missing or malformed
// payload is not an error; the hook degrades to an empty payload so
// it can be run by hand without piping JSON in.
func ReadPayload(r io.Reader) Payload {
	var p Payload

	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return p
	}

	if err := json.Unmarshal(data, &p); err != nil {
		logging.Debug("ignoring malformed hook payload", logging.Err(err))
		return Payload{}
	}

	return p
}
