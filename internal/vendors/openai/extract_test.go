package openai

import "testing"

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"well formed", `{"output":[{"content":[{"text":"X"}]}]}`, "X"},
		{"first of many", `{"output":[{"content":[{"text":"a"},{"text":"b"}]},{"content":[{"text":"c"}]}]}`, "a"},
		{"empty text is still text", `{"output":[{"content":[{"text":""}]}]}`, ""},
		{"no output", `{"id":"resp"}`, NoTextPlaceholder},
		{"output not a list", `{"output":{"content":[{"text":"X"}]}}`, NoTextPlaceholder},
		{"empty output", `{"output":[]}`, NoTextPlaceholder},
		{"no content", `{"output":[{"type":"reasoning"}]}`, NoTextPlaceholder},
		{"empty content", `{"output":[{"content":[]}]}`, NoTextPlaceholder},
		{"text is a number", `{"output":[{"content":[{"text":42}]}]}`, NoTextPlaceholder},
		{"text is null", `{"output":[{"content":[{"text":null}]}]}`, NoTextPlaceholder},
		{"top level list", `[1,2,3]`, NoTextPlaceholder},
		{"not json", `<html>gateway</html>`, NoTextPlaceholder},
		{"empty body", ``, NoTextPlaceholder},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractReply([]byte(tc.body)); got != tc.want {
				t.Fatalf("expected: %q, got: %q", tc.want, got)
			}
		})
	}
}
