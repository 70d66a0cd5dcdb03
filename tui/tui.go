package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pix-xip/sshcode/ssh"
)

type Options struct {
	// ConfigPath is the ssh config file hosts are read from.
	ConfigPath string
	// Filter keeps only hosts fuzzy matching it when not empty.
	Filter string
}

// SelectHost shows the menu and returns the chosen host, or nil when the user
// picked Exit. The terminal is restored before it returns.
func SelectHost(opts Options) (*ssh.Host, error) {
	m := initialModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running program: %w", err)
	}

	fm := final.(Model)
	if fm.err != nil {
		return nil, fm.err
	}

	return fm.Selected(), nil
}
