package parser

import (
	"testing"
)

func TestSplit(t *testing.T) {
	tests := map[string]struct {
		content    string
		wantFormat Format
		wantRaw    string
		wantBody   string
	}{
		"yaml frontmatter": {
			content:    "---\nname: test\n---\nbody here\n",
			wantFormat: FormatYAML,
			wantRaw:    "name: test",
			wantBody:   "body here\n",
		},
		"toml frontmatter": {
			content:    "+++\nname = \"test\"\n+++\nbody here\n",
			wantFormat: FormatTOML,
			wantRaw:    "name = \"test\"",
			wantBody:   "body here\n",
		},
		"no frontmatter": {
			content:    "just content\n",
			wantFormat: FormatNone,
			wantBody:   "just content\n",
		},
		"unterminated frontmatter": {
			content:    "---\nname: test\nno closing delimiter",
			wantFormat: FormatNone,
			wantBody:   "---\nname: test\nno closing delimiter",
		},
		"empty frontmatter": {
			content:    "---\n---\nbody\n",
			wantFormat: FormatYAML,
			wantRaw:    "",
			wantBody:   "body\n",
		},
		"windows line endings": {
			content:    "---\r\nname: test\r\n---\r\nbody\r\n",
			wantFormat: FormatYAML,
			wantRaw:    "name: test",
			wantBody:   "body\r\n",
		},
		"delimiter not on own line": {
			content:    "---name: test\n",
			wantFormat: FormatNone,
			wantBody:   "---name: test\n",
		},
		"empty content": {
			content:    "",
			wantFormat: FormatNone,
			wantBody:   "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Split([]byte(tt.content))
			if got.Format != tt.wantFormat {
				t.Errorf("Split().Format = %v, want %v", got.Format, tt.wantFormat)
			}
			if got.Format != FormatNone && string(got.Raw) != tt.wantRaw {
				t.Errorf("Split().Raw = %q, want %q", got.Raw, tt.wantRaw)
			}
			if got.Body != tt.wantBody {
				t.Errorf("Split().Body = %q, want %q", got.Body, tt.wantBody)
			}
		})
	}
}

func TestFrontmatterDecode(t *testing.T) {
	tests := map[string]struct {
		content  string
		wantName string
		wantDesc string
		wantErr  bool
	}{
		"yaml fields": {
			content:  "---\nname: web-search\ndescription: searches the web\n---\n",
			wantName: "web-search",
			wantDesc: "searches the web",
		},
		"toml fields": {
			content:  "+++\nname = \"web-search\"\ndescription = \"searches the web\"\n+++\n",
			wantName: "web-search",
			wantDesc: "searches the web",
		},
		"quoted yaml values": {
			content:  "---\nname: 'my-skill'\ndescription: \"does things\"\n---\n",
			wantName: "my-skill",
			wantDesc: "does things",
		},
		"malformed yaml": {
			content: "---\nname: [unclosed\n---\n",
			wantErr: true,
		},
		"malformed toml": {
			content: "+++\nname = unquoted value\n+++\n",
			wantErr: true,
		},
		"no frontmatter decodes empty": {
			content: "just body\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fm := Split([]byte(tt.content))
			fields, err := fm.Decode()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Decode() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if got := String(fields, "name"); got != tt.wantName {
				t.Errorf("name = %q, want %q", got, tt.wantName)
			}
			if got := String(fields, "description"); got != tt.wantDesc {
				t.Errorf("description = %q, want %q", got, tt.wantDesc)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := map[string]struct {
		value any
		want  string
	}{
		"string":  {value: "hello", want: "hello"},
		"int":     {value: 42, want: "42"},
		"bool":    {value: true, want: "true"},
		"slice":   {value: []any{"a", "b"}, want: "[a b]"},
		"nil-ish": {value: nil, want: "<nil>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Stringify(tt.value); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
