package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/ormdoc/internal/tui/components"
)

// ConfirmWrite asks the user to approve pending file writes. In
// non-interactive mode (CI, piped output) it approves automatically;
// batch runs must not hang waiting for a terminal.
func ConfirmWrite(question string, detail ...string) (bool, error) {
	if !IsInteractive() {
		return true, nil
	}

	model, err := tea.NewProgram(components.NewConfirm(question, detail...)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	confirm, ok := model.(components.Confirm)
	if !ok {
		return false, fmt.Errorf("unexpected prompt model %T", model)
	}
	return confirm.Confirmed(), nil
}
