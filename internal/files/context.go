package files

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/spf13/afero"
)

// ErrNotText is wrapped by FileReadError when a file isn't valid UTF-8.
var ErrNotText = errors.New("file content is not valid utf-8 text")

// FileReadError reports the path which could not be turned into context.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file: '%v', err: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// BuildContext reads every path, in order, and renders them into one context blob
// which may be prepended to a user request. Any unreadable file aborts the whole
// build, partial context is never returned. No paths means no context, and no
// filesystem access.
func BuildContext(fsys afero.Fs, paths []string) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range paths {
		data, err := afero.ReadFile(fsys, p)
		if err != nil {
			return "", &FileReadError{Path: p, Err: err}
		}
		if !utf8.Valid(data) {
			return "", &FileReadError{Path: p, Err: ErrNotText}
		}
		sb.WriteString(formatEntry(p, string(data)))
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("built file context from %d files, %d bytes\n", len(paths), sb.Len()))
	}
	return sb.String(), nil
}

func formatEntry(path, content string) string {
	return fmt.Sprintf("File: %v\n```text\n%v\n```\n\n", path, content)
}
