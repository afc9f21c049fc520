package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumen-sh/lumen/internal/provider"
)

// maxVisible bounds the number of results drawn below the prompt.
const maxVisible = 10

// Picker is the interactive search prompt. Typing re-queries the searcher;
// Enter launches the selection and quits.
type Picker struct {
	searcher Searcher
	styles   Styles

	input    textinput.Model
	results  []provider.ListResult
	cursor   int
	offset   int
	width    int
	launched bool
	err      error
}

// NewPicker creates the picker over a searcher.
func NewPicker(searcher Searcher, styles Styles) *Picker {
	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.TextStyle = styles.Query
	input.Focus()

	return &Picker{
		searcher: searcher,
		styles:   styles,
		input:    input,
		width:    80,
	}
}

// Run starts the picker and blocks until the user selects or cancels.
// It reports whether a result was launched.
func (p *Picker) Run() (bool, error) {
	program := tea.NewProgram(p)
	model, err := program.Run()
	if err != nil {
		return false, err
	}

	final := model.(*Picker)
	if final.err != nil {
		return false, final.err
	}
	return final.launched, nil
}

// Init implements tea.Model.
func (p *Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return p, tea.Quit

		case "enter":
			if p.cursor < len(p.results) {
				p.err = p.searcher.Execute(p.results[p.cursor])
				p.launched = p.err == nil
			}
			return p, tea.Quit

		case "up", "ctrl+k":
			p.moveCursor(-1)
			return p, nil

		case "down", "ctrl+j", "tab":
			p.moveCursor(1)
			return p, nil
		}

	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	if query := p.input.Value(); query != before {
		p.results = p.searcher.Search(query)
		p.cursor = 0
		p.offset = 0
	}
	return p, cmd
}

func (p *Picker) moveCursor(delta int) {
	if len(p.results) == 0 {
		return
	}

	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.results) {
		p.cursor = len(p.results) - 1
	}

	// Keep the cursor inside the visible window.
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+maxVisible {
		p.offset = p.cursor - maxVisible + 1
	}
}

// View implements tea.Model.
func (p *Picker) View() string {
	var b strings.Builder

	b.WriteString(p.input.View())
	b.WriteString("\n")

	end := p.offset + maxVisible
	if end > len(p.results) {
		end = len(p.results)
	}

	for i := p.offset; i < end; i++ {
		label := p.results[i].Label
		if i == p.cursor {
			b.WriteString(p.styles.Cursor.Render("▸ "))
			b.WriteString(p.styles.Selected.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(p.styles.Result.Render(label))
		}
		b.WriteString("\n")
	}

	if len(p.results) > maxVisible {
		b.WriteString(p.styles.Hint.Render(
			fmt.Sprintf("  %d more", len(p.results)-maxVisible)))
		b.WriteString("\n")
	}

	b.WriteString(p.styles.Hint.Render("enter launch · esc quit"))
	b.WriteString("\n")

	return b.String()
}
