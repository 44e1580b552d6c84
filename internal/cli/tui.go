package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/format"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// formatChoice is one selectable entry in the picker.
type formatChoice struct {
	format format.Format
	label  string
}

// FormatPickerModel is the bubbletea model for resolving an ambiguous file
// interactively. A 2x2 text file can be either a two-edge list or a 2x2
// adjacency matrix; the user decides.
type FormatPickerModel struct {
	Path     string
	Choices  []formatChoice
	Cursor   int
	Selected *format.Format
}

// NewFormatPickerModel creates a picker for the ambiguous file at path.
func NewFormatPickerModel(path string) FormatPickerModel {
	return FormatPickerModel{
		Path: path,
		Choices: []formatChoice{
			{format: format.Edgelist, label: "edge list (two whitespace-separated vertex ids per line)"},
			{format: format.Adjacency, label: "adjacency matrix (square matrix of edge counts)"},
		},
	}
}

func (m FormatPickerModel) Init() tea.Cmd {
	return nil
}

func (m FormatPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
			}
		case "enter":
			f := m.Choices[m.Cursor].format
			m.Selected = &f
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FormatPickerModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s is ambiguous", m.Path)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("Pick how to read it:"))
	b.WriteString("\n\n")

	for i, choice := range m.Choices {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = listSelectedStyle.Render("> ")
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(string(choice.format)))
		b.WriteString(listDimStyle.Render("  " + choice.label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("up/down to move · enter to select · q to abort"))
	b.WriteString("\n")
	return b.String()
}

// pickFormat runs the interactive picker and returns the chosen format.
func pickFormat(path string) (format.Format, error) {
	p := tea.NewProgram(NewFormatPickerModel(path))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(FormatPickerModel)
	if !ok || m.Selected == nil {
		return "", errors.New(errors.ErrCodeAmbiguousFormat, "no format selected for %q", path)
	}
	return *m.Selected, nil
}

// isInteractive reports whether stdout is attached to a terminal.
func isInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
