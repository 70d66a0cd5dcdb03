// Package tui provides the host selection menu for sshcode
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pix-xip/sshcode/ssh"
	"github.com/sahilm/fuzzy"
)

// exitEntry is the last row of the menu, always present.
const exitEntry = "Exit"

// chromeHeight is the number of rows taken by everything but the list.
const chromeHeight = 6

type state int

const (
	browsing state = iota
	confirmed
	cancelled
)

type Model struct {
	hosts      []*ssh.Host
	configPath string
	filter     string
	loaded     int // host count before filtering
	cursor     Cursor
	state      state
	err        error // config read failure, shown until a key is pressed
	help       help.Model
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cursor.VpHeight = max(1, msg.Height-chromeHeight)
		m.cursor.EnsureVisible()
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.err != nil {
			m.state = cancelled
			return m, tea.Quit
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.state = cancelled
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.cursor.Up()
		case key.Matches(msg, keys.Down):
			m.cursor.Down()
		case key.Matches(msg, keys.Confirm):
			if m.onExit() {
				m.state = cancelled
			} else {
				m.state = confirmed
			}

			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.state != browsing {
		return ""
	}

	var sb strings.Builder

	if m.err != nil {
		sb.WriteString(errorStyle.Render("error: " + m.err.Error()))
		sb.WriteString("\n\nPress any key to exit.\n")

		return sb.String()
	}

	sb.WriteString(titleStyle.Render("Select an SSH host to open in VS Code:"))
	sb.WriteByte('\n')

	if len(m.hosts) == 0 {
		if m.loaded > 0 {
			sb.WriteString(emptyStyle.Render(fmt.Sprintf("No SSH hosts match '%s'.", m.filter)))
		} else {
			sb.WriteString(emptyStyle.Render(fmt.Sprintf("No SSH hosts found in %s.", m.configPath)))
		}

		sb.WriteByte('\n')
	}

	start, end := m.cursor.Window()
	for i := start; i < end; i++ {
		label := exitEntry

		var detail string
		if i < len(m.hosts) {
			label = m.hosts[i].Alias
			detail = m.hosts[i].Destination()
		}

		if i == m.cursor.Pos {
			sb.WriteString(selectedStyle.Render("> " + label))
		} else {
			sb.WriteString("  " + label)
		}

		if detail != "" {
			sb.WriteString("  " + detailStyle.Render(detail))
		}

		sb.WriteByte('\n')
	}

	sb.WriteString(helpStyle.Render(m.help.View(keys)))

	return sb.String()
}

// Selected returns the confirmed host, or nil when the menu was cancelled.
func (m Model) Selected() *ssh.Host {
	if m.state != confirmed {
		return nil
	}

	return m.hosts[m.cursor.Pos]
}

func (m Model) onExit() bool {
	return m.cursor.Pos == len(m.hosts)
}

func initialModel(opts Options) Model {
	m := Model{
		configPath: opts.ConfigPath,
		filter:     opts.Filter,
		help:       help.New(),
	}

	hosts, err := ssh.LoadHosts(opts.ConfigPath)
	if err != nil {
		m.err = err
		return m
	}

	m.loaded = len(hosts)
	m.hosts = filterHosts(hosts, opts.Filter)
	// the exit entry is counted here and never stored with the hosts
	m.cursor = Cursor{ItemCount: len(m.hosts) + 1}

	return m
}

// filterHosts keeps the hosts fuzzy matching query, in their original order.
func filterHosts(hosts []*ssh.Host, query string) []*ssh.Host {
	if query == "" {
		return hosts
	}

	targets := make([]string, 0, len(hosts))
	for _, host := range hosts {
		targets = append(targets, host.Alias+" "+host.Destination())
	}

	ranks := fuzzy.Find(query, targets)

	idx := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		idx = append(idx, rank.Index)
	}

	slices.Sort(idx)

	filtered := make([]*ssh.Host, 0, len(idx))
	for _, i := range idx {
		filtered = append(filtered, hosts[i])
	}

	return filtered
}
