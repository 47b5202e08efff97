package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/cursion-setup/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the installer's interactive prompts inline in the terminal.
// Each prompt is a short-lived bubbletea program so printed output stays in
// the scrollback.
type TUI struct {
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

// Option configures a [TUI].
type Option func(*TUI)

// WithInput replaces os.Stdin as the keyboard source.
func WithInput(r io.Reader) Option {
	return func(t *TUI) {
		t.in = r
	}
}

// WithOutput replaces os.Stdout as the render target.
func WithOutput(w io.Writer) Option {
	return func(t *TUI) {
		t.out = w
	}
}

func New(log *logger.Logger, opts ...Option) *TUI {
	t := &TUI{
		in:     os.Stdin,
		out:    os.Stdout,
		logger: log.WithComponent("tui"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Welcome prints the Cursion banner.
func (t *TUI) Welcome() {
	fmt.Fprintln(t.out, bannerStyle.Render(banner))
}

// Prompt asks for a single line of input. Hidden prompts echo '*', never
// print the answer once submitted and return it untrimmed. Visible answers
// are trimmed.
func (t *TUI) Prompt(ctx context.Context, label string, hidden bool) (string, error) {
	finalModel, err := t.run(ctx, newPromptModel(label, hidden))
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.value(), nil
}

// Confirm asks a yes/no question. The default answer is no.
func (t *TUI) Confirm(ctx context.Context, label string) (bool, error) {
	finalModel, err := t.run(ctx, newConfirmModel(label))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.answer, nil
}

// Success prints msg after a green check mark.
func (t *TUI) Success(msg string) {
	fmt.Fprintln(t.out, "  "+successMark()+" "+msg)
}

// Failure prints msg after a red cross.
func (t *TUI) Failure(msg string) {
	fmt.Fprintln(t.out, "  "+failureMark()+" "+msg)
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	finalModel, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		t.logger.Err(err).Msg("prompt program failed")
		return nil, err
	}

	return finalModel, nil
}
