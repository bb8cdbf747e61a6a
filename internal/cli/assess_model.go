package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// assessKeyMap defines the questionnaire key bindings.
type assessKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func newAssessKeyMap() assessKeyMap {
	return assessKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev option")),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next option")),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer")),
		Back: key.NewBinding(
			key.WithKeys("left", "backspace"),
			key.WithHelp("←", "previous question")),
		Skip: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "skip for now")),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "save and quit")),
	}
}

// assessModel is the bubbletea Model for the questionnaire. Every answer is
// persisted by the service as it is given, so quitting mid-run loses nothing.
type assessModel struct {
	app    *App
	keys   assessKeyMap
	bar    progress.Model
	cursor int
	width  int
	err    error
	done   bool
}

func newAssessModel(app *App) assessModel {
	bar := progress.New(
		progress.WithSolidFill(string(formatter.ColorGreen)),
		progress.WithoutPercentage(),
	)
	m := assessModel{
		app:  app,
		keys: newAssessKeyMap(),
		bar:  bar,
	}
	m.syncCursor()
	return m
}

// syncCursor points the cursor at the recorded answer for the current
// question, or the first option when it is unanswered.
func (m *assessModel) syncCursor() {
	m.cursor = 0
	q := m.app.Assessment.Current()
	if q == nil {
		return
	}
	if v, ok := m.app.Assessment.AnswerValue(q.ID); ok {
		for i, opt := range q.Options {
			if opt.Value == v {
				m.cursor = i
				return
			}
		}
	}
}

func (m assessModel) Init() tea.Cmd {
	return nil
}

func (m assessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-10, 40)
		return m, nil

	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
		ctx := context.Background()

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if q := m.app.Assessment.Current(); q != nil && m.cursor < len(q.Options)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if err := m.app.Assessment.Retreat(ctx); err != nil {
				m.err = err
				return m, nil
			}
			m.syncCursor()
			return m, nil

		case key.Matches(msg, m.keys.Skip):
			if err := m.app.Assessment.Advance(ctx); err != nil {
				m.err = err
				return m, nil
			}
			m.syncCursor()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			q := m.app.Assessment.Current()
			if q == nil || m.cursor >= len(q.Options) {
				return m, nil
			}
			if err := m.app.Assessment.Answer(ctx, q.ID, q.Options[m.cursor].Value); err != nil {
				m.err = err
				return m, nil
			}
			if err := m.app.Assessment.Advance(ctx); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			if m.app.Assessment.IsComplete() {
				m.done = true
				return m, tea.Quit
			}
			m.syncCursor()
			return m, nil
		}
	}

	return m, nil
}

func (m assessModel) View() string {
	if m.done {
		return ""
	}

	q := m.app.Assessment.Current()
	if q == nil {
		return formatter.Dim("No active question.\n")
	}

	answered, total := m.app.Assessment.Progress()
	pct := 0.0
	if total > 0 {
		pct = float64(answered) / float64(total)
	}

	var b strings.Builder
	b.WriteString(formatter.Header("AI Readiness Assessment"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		m.bar.ViewAs(pct),
		formatter.Dim(fmt.Sprintf("%d of %d answered", answered, total))))

	b.WriteString(fmt.Sprintf("%s %s\n\n",
		formatter.Dim(fmt.Sprintf("Q%d.", m.app.Assessment.Index()+1)),
		formatter.Bold(q.Text)))

	for i, opt := range q.Options {
		marker := "  "
		label := opt.Label
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
			label = formatter.StyleGreen.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", marker, label))
		if i == m.cursor && opt.Description != "" {
			b.WriteString(formatter.Dim("    "+opt.Description) + "\n")
		}
	}

	if v, ok := m.app.Assessment.AnswerValue(q.ID); ok {
		if opt := q.OptionByValue(v); opt != nil {
			b.WriteString("\n" + formatter.Dim("Current answer: "+opt.Label) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ choose · enter answer · ← back · → skip · q save and quit") + "\n")
	return b.String()
}
