package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type lineKind int

const (
	lineEmpty lineKind = iota
	lineQuit
	lineMessage
)

const (
	inputPrompt   = "You > "
	replBanner    = "Entering REPL mode. Type :q or :quit to exit."
	contextBanner = "File context loaded and will be included with each message."
)

var quitters = []string{":q", ":quit"}

func classify(line string) (string, lineKind) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return "", lineEmpty
	case slices.Contains(quitters, trimmed):
		return "", lineQuit
	default:
		return trimmed, lineMessage
	}
}

// Interactive reads one message per line and replies to each, until a quit
// token or end of input. A failed turn is reported and the loop carries on,
// only failing to build the file context or to read input stops the session
// with an error.
func (s *Session) Interactive(ctx context.Context) error {
	fileCtx, err := s.buildContext()
	if err != nil {
		return err
	}
	s.printer.Notice(replBanner)
	if fileCtx != "" {
		s.printer.Notice(contextBanner)
	}
	state := Running
	for state == Running {
		state, err = s.step(ctx, fileCtx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) step(ctx context.Context, fileCtx string) (State, error) {
	if ctx.Err() != nil {
		return Terminated, nil
	}
	s.printer.Prompt(inputPrompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return Terminated, fmt.Errorf("failed to read user input: %w", err)
		}
		// A last line without newline is still a message, the next read ends the session
		if line == "" {
			return Terminated, nil
		}
	}

	msg, kind := classify(line)
	switch kind {
	case lineEmpty:
		return Running, nil
	case lineQuit:
		return Terminated, nil
	}

	reply, err := s.reply(ctx, fileCtx, msg)
	if err != nil {
		s.printer.Error(err)
		return Running, nil
	}
	s.printReply(reply)
	return Running, nil
}
