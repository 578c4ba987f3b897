package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// SpecificOutput is the event-scoped portion of the structured hook
// response understood by the host.
type SpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// Output is the structured hook response. When emitted on stdout, the
// host injects AdditionalContext into the model context instead of the
// raw stdout text.
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

// WriteText writes the protocol block as plain stdout text, the
// default UserPromptSubmit injection mechanism.
func WriteText(w io.Writer, context string) error {
	if _, err := fmt.Fprintln(w, context); err != nil {
		return fmt.Errorf("failed to write hook output: %w", err)
	}
	return nil
}

// WriteJSON writes the protocol block wrapped in the structured hook
// response envelope.
func WriteJSON(w io.Writer, context string) error {
	out := Output{
		HookSpecificOutput: SpecificOutput{
			HookEventName:     EventUserPromptSubmit,
			AdditionalContext: context,
		},
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode hook output: %w", err)
	}
	return nil
}
