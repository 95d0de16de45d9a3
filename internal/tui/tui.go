// Package tui holds the terminal views of the command-line unpacker: the
// masked password prompt (Bubble Tea) and the lipgloss renderings of the
// recovered vault and of the build information.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/vault-unpacker/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	input  io.Reader
	output io.Writer

	logger *logger.Logger
}

// New returns a TUI that reads keys from stdin and draws on stderr, so
// stdout stays free for the unpacked result.
func New(logger *logger.Logger) *TUI {
	return &TUI{
		input:  os.Stdin,
		output: os.Stderr,
		logger: logger,
	}
}

// PromptPassword asks for the vault password. errMsg, when not empty, is
// shown under the input, e.g. after a failed attempt. ErrUserQuit is
// returned when the user leaves the prompt.
func (t *TUI) PromptPassword(ctx context.Context, errMsg string) (string, error) {
	model := NewPasswordModel(errMsg)

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(*PasswordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.Quit() {
		t.logger.Info().Msg("password prompt closed by user")
		return "", ErrUserQuit
	}

	return result.Password(), nil
}
