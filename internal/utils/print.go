package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/gpt/internal/models"
	"github.com/charmbracelet/glamour"
)

// TermPrinter renders the turns of a session with role labels. Replies are
// rendered as markdown when Out is a terminal, unless Raw is set.
type TermPrinter struct {
	Out io.Writer
	Err io.Writer
	Raw bool

	markdown bool
	renderer *glamour.TermRenderer
}

// NewTermPrinter to stdout and stderr
func NewTermPrinter(raw bool) *TermPrinter {
	return &TermPrinter{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Raw:      raw,
		markdown: !raw && IsTerminal(os.Stdout),
	}
}

func (p *TermPrinter) colorize(color, s string) string {
	if p.Raw {
		return s
	}
	return Colorize(color, s)
}

func roleLabel(role string) string {
	switch role {
	case models.RoleUser:
		return "You:"
	case models.RoleAssistant:
		return "Assistant:"
	default:
		return role + ":"
	}
}

// Prompt prints label without a newline, awaiting input on the same line
func (p *TermPrinter) Prompt(label string) {
	fmt.Fprint(p.Out, p.colorize(RoleColor(models.RoleUser), label))
}

// Print msg underneath its role label
func (p *TermPrinter) Print(msg models.Message) error {
	color := RoleColor(msg.Role)
	if msg.Role == models.RoleAssistant {
		fmt.Fprintln(p.Out)
	}
	fmt.Fprintln(p.Out, p.colorize(color, roleLabel(msg.Role)))
	if msg.Role != models.RoleAssistant {
		fmt.Fprintln(p.Out, msg.Content)
		return nil
	}
	return p.AttemptPrettyPrint(msg.Content)
}

// AttemptPrettyPrint the reply as markdown, if a terminal is attached. If
// markdown rendering fails, the reply is printed as is.
func (p *TermPrinter) AttemptPrettyPrint(reply string) error {
	if !p.markdown {
		fmt.Fprintln(p.Out, p.colorize(RoleColor(models.RoleAssistant), reply))
		return nil
	}
	if p.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(TermWidth()),
		)
		if err != nil {
			p.markdown = false
			fmt.Fprintln(p.Out, reply)
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		p.renderer = r
	}
	out, err := p.renderer.Render(reply)
	if err != nil {
		fmt.Fprintln(p.Out, reply)
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprint(p.Out, out)
	return nil
}

// Notice prints an informational line
func (p *TermPrinter) Notice(msg string) {
	fmt.Fprintln(p.Out, p.colorize(ThemeNoticeColor(), msg))
}

// Error prints a single diagnostic line to Err
func (p *TermPrinter) Error(err error) {
	fmt.Fprintf(p.Err, "%v %v\n", p.colorize(RoleColor("error"), "Error:"), err)
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintWarn(fmt.Sprintf("error type: %T\n", err))
	}
}
