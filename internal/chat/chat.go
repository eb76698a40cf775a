package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/gpt/internal/files"
	"github.com/baalimago/gpt/internal/models"
	"github.com/baalimago/gpt/internal/prompt"
	"github.com/spf13/afero"
)

// Printer renders the session to the user
type Printer interface {
	// Prompt for input, without trailing newline
	Prompt(label string)
	Print(msg models.Message) error
	Notice(msg string)
	// Error reports a failed turn as a single diagnostic line
	Error(err error)
}

// Session drives turns against a Replier. The file context is built once, when
// the session starts, and then reused as is for every turn.
type Session struct {
	replier models.Replier
	printer Printer
	fs      afero.Fs
	files   []string
	in      *bufio.Reader
	debug   bool
}

func New(r models.Replier, p Printer, fsys afero.Fs, filePaths []string, in io.Reader) *Session {
	return &Session{
		replier: r,
		printer: p,
		fs:      fsys,
		files:   filePaths,
		in:      bufio.NewReader(in),
		debug:   misc.Truthy(os.Getenv("DEBUG")),
	}
}

func (s *Session) buildContext() (string, error) {
	fileCtx, err := files.BuildContext(s.fs, s.files)
	if err != nil {
		return "", fmt.Errorf("failed to build file context: %w", err)
	}
	return fileCtx, nil
}

func (s *Session) reply(ctx context.Context, fileCtx, msg string) (string, error) {
	p := prompt.Assemble(fileCtx, msg)
	if s.debug {
		ancli.PrintOK(fmt.Sprintf("sending prompt of %d bytes\n", len(p)))
	}
	return s.replier.Reply(ctx, p)
}

func (s *Session) printReply(reply string) {
	err := s.printer.Print(models.Message{Role: models.RoleAssistant, Content: reply})
	if err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to pretty print reply: %v\n", err))
	}
}

// OneShot performs a single turn with msg, or the default message if msg is
// empty. Failures to build the context or to get a reply are returned.
func (s *Session) OneShot(ctx context.Context, msg string) error {
	fileCtx, err := s.buildContext()
	if err != nil {
		return err
	}
	msg = prompt.OrDefault(msg)
	if err := s.printer.Print(models.Message{Role: models.RoleUser, Content: msg}); err != nil {
		return fmt.Errorf("failed to print message: %w", err)
	}
	reply, err := s.reply(ctx, fileCtx, msg)
	if err != nil {
		return fmt.Errorf("failed to query model: %w", err)
	}
	s.printReply(reply)
	return nil
}
