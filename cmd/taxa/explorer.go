package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kaytchjam/taxa/internal/taxonomy"
)

// ExploreCmd shows an interactive hierarchy browser.
type ExploreCmd struct{}

// Styles for the explorer (Tokyo Night palette)
var (
	expRankStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	expCladeStyle    = lipgloss.NewStyle().Bold(true)
	expSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#414868")).Foreground(lipgloss.Color("#c0caf5"))
	expMarkerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	expStatusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	expHelpStyle     = lipgloss.NewStyle().Faint(true)
)

// explorerRow is one visible line: a taxon at its depth below the root.
type explorerRow struct {
	taxon *taxonomy.Taxon
	depth int
}

type explorerModel struct {
	tree     *taxonomy.Tree
	expanded map[*taxonomy.Taxon]bool
	rows     []explorerRow
	cursor   int
	scroll   int
	width    int
	height   int
	noColor  bool
}

func newExplorerModel(tree *taxonomy.Tree, noColor bool) explorerModel {
	m := explorerModel{
		tree:     tree,
		expanded: map[*taxonomy.Taxon]bool{tree.Root(): true},
		width:    80,
		height:   24,
		noColor:  noColor,
	}
	m.rebuildRows()
	return m
}

// rebuildRows flattens the tree into visible rows, honoring collapse state.
func (m *explorerModel) rebuildRows() {
	m.rows = m.rows[:0]
	m.appendRows(m.tree.Root(), 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *explorerModel) appendRows(tx *taxonomy.Taxon, depth int) {
	m.rows = append(m.rows, explorerRow{taxon: tx, depth: depth})
	if !m.expanded[tx] {
		return
	}
	for _, b := range tx.Branches() {
		m.appendRows(b, depth+1)
	}
}

func (m explorerModel) Init() tea.Cmd {
	return nil
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampScroll()

		case tea.KeyDown:
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.clampScroll()

		case tea.KeyRight, tea.KeyEnter:
			tx := m.rows[m.cursor].taxon
			if tx.HasBranches() && !m.expanded[tx] {
				m.expanded[tx] = true
				m.rebuildRows()
			}

		case tea.KeyLeft:
			tx := m.rows[m.cursor].taxon
			if m.expanded[tx] {
				delete(m.expanded, tx)
				m.rebuildRows()
			} else if tx.HasPrecursor() {
				// Jump to the precursor's row.
				for i, row := range m.rows {
					if row.taxon == tx.Precursor() {
						m.cursor = i
						break
					}
				}
				m.clampScroll()
			}

		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "q":
				return m, tea.Quit
			case "g":
				m.cursor = 0
				m.clampScroll()
			case "G":
				m.cursor = len(m.rows) - 1
				m.clampScroll()
			}
		}
	}

	return m, nil
}

func (m *explorerModel) viewableHeight() int {
	h := m.height - 2 // status + help lines
	if h < 1 {
		h = 1
	}
	return h
}

func (m *explorerModel) clampScroll() {
	vh := m.viewableHeight()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+vh {
		m.scroll = m.cursor - vh + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m explorerModel) View() string {
	var b strings.Builder

	vh := m.viewableHeight()
	end := m.scroll + vh
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	for i := end - m.scroll; i < vh; i++ {
		b.WriteString("\n")
	}

	selected := m.rows[m.cursor].taxon
	status := selected.Classification()
	if m.width > 1 && len(status) > m.width-2 {
		status = status[:m.width-3] + "…"
	}
	if m.noColor {
		b.WriteString(" " + status + "\n")
		b.WriteString(" ↑↓ move  →/enter expand  ← collapse  q quit")
	} else {
		b.WriteString(" " + expStatusStyle.Render(status) + "\n")
		b.WriteString(" " + expHelpStyle.Render("↑↓ move  →/enter expand  ← collapse  q quit"))
	}

	return b.String()
}

func (m explorerModel) renderRow(i int) string {
	row := m.rows[i]
	tx := row.taxon

	marker := " "
	if tx.HasBranches() {
		if m.expanded[tx] {
			marker = "▾"
		} else {
			marker = "▸"
		}
	}

	indent := strings.Repeat("  ", row.depth)
	if m.noColor {
		line := fmt.Sprintf("%s%s %s %s", indent, marker, tx.Rank(), tx.Clade())
		if i == m.cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		return line
	}

	line := indent + expMarkerStyle.Render(marker) + " " +
		expRankStyle.Render(tx.Rank().String()) + " " +
		expCladeStyle.Render(tx.Clade())
	if i == m.cursor {
		return expSelectedStyle.Render("> ") + line
	}
	return "  " + line
}

func (cmd *ExploreCmd) Run(cli *CLI) error {
	tree, err := loadTree(cli)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}

	m := newExplorerModel(tree, cfg.NoColor)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
