package modelscmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pubgo/funk/v2/log"

	"github.com/pubgo/promptrun/utils/genaiclient"
)

var cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

type pickModel struct {
	cursor   int
	choices  []string
	selected string
	length   int
}

func initialPickModel(choices []string) pickModel {
	return pickModel{
		choices: choices,
		length:  len(choices),
	}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyUp, tea.KeyLeft, tea.KeyDown, tea.KeyRight:
			m.cursor++
		case tea.KeyEnter:
			m.selected = m.choices[m.cursor%m.length]
			return m, tea.Quit
		default:
			log.Error().Str("key", msg.String()).Msg("unknown key")
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m pickModel) View() string {
	s := "Please Select Model:\n"

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor%m.length == i {
			cursor = cursorStyle.Render(">")
		}

		s += fmt.Sprintf("%s %s\n", cursor, choice)
	}

	return s
}

type textInputModel struct {
	textInput textinput.Model
	exit      bool
}

// sanitizeInput verifies that an input text string gets validated
func sanitizeInput(input string) error {
	if !genaiclient.Allowed(input) {
		return fmt.Errorf("model %q is not a known model reference", input)
	}
	return nil
}

func initialTextInputModel(data string) textInputModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 156
	ti.Width = 40
	ti.Validate = sanitizeInput
	ti.SetValue(data)

	return textInputModel{
		textInput: ti,
	}
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.exit = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	return fmt.Sprintf(
		"model name: %s\n",
		m.textInput.View(),
	)
}

func (m textInputModel) Value() string {
	return m.textInput.Value()
}
