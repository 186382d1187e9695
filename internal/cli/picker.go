package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PickerModel - Interactive object selection for import
// =============================================================================

// PickerItem is one selectable object.
type PickerItem struct {
	ID       pool.ObjectID
	Name     string
	Type     pool.ObjectType
	Children int
	Root     bool // not referenced by any other object
}

// PickerModel is the bubbletea model for choosing objects to import.
type PickerModel struct {
	Items     []PickerItem
	Cursor    int
	Offset    int
	Height    int
	Chosen    map[pool.ObjectID]bool
	Confirmed bool

	// wasOpen is false until the first message. The picker resets its
	// cursor and choices then, so a reused model starts fresh every time
	// it is shown.
	wasOpen bool
}

// NewPickerModel creates a picker over items.
func NewPickerModel(items []PickerItem) PickerModel {
	return PickerModel{
		Items:  items,
		Height: 15,
		Chosen: make(map[pool.ObjectID]bool),
	}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.wasOpen {
		m.wasOpen = true
		m.Cursor, m.Offset = 0, 0
		m.Confirmed = false
		m.Chosen = make(map[pool.ObjectID]bool)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.wasOpen = false
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			if len(m.Items) > 0 {
				id := m.Items[m.Cursor].ID
				if m.Chosen[id] {
					delete(m.Chosen, id)
				} else {
					m.Chosen[id] = true
				}
			}
		case "r":
			for _, it := range m.Items {
				if it.Root && it.Type != pool.TypeWorkingSet {
					m.Chosen[it.ID] = true
				}
			}
		case "enter":
			if len(m.Chosen) == 0 && len(m.Items) > 0 {
				m.Chosen[m.Items[m.Cursor].ID] = true
			}
			m.Confirmed = true
			m.wasOpen = false
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Objects to Import"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  r all roots  ⏎ import  q cancel"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Chosen[it.ID] {
			mark = "[x]"
		}
		children := "—"
		if it.Children > 0 {
			children = strconv.Itoa(it.Children)
		}
		rows = append(rows, []string{cursor + mark, strconv.Itoa(int(it.ID)), it.Name, it.Type.String(), children})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Type", "Children").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Items) {
				return lipgloss.NewStyle()
			}
			it := m.Items[idx]
			base := lipgloss.NewStyle()
			switch {
			case idx == m.Cursor:
				base = base.Bold(true).Foreground(colorCyan)
			case m.Chosen[it.ID]:
				base = base.Foreground(colorGreen)
			case it.Type == pool.TypeWorkingSet:
				base = base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d chosen", m.Cursor+1, len(m.Items), len(m.Chosen))))
	if len(m.Chosen) > 0 {
		b.WriteString("  ")
		b.WriteString(listSelectedStyle.Render("⏎ to import"))
	}

	return b.String()
}

// Selection returns the chosen IDs in list order.
func (m PickerModel) Selection() []pool.ObjectID {
	var out []pool.ObjectID
	for _, it := range m.Items {
		if m.Chosen[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}
