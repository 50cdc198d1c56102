package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julien-sobczak/the-moodwriter/internal/mood"
	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
	"github.com/julien-sobczak/the-moodwriter/pkg/text"
)

/*
 * The command checkin uses Bubble Tea under the hood to provide an interactive CLI.
 * All Bubble Tea-related code is present in this file to make easy to refactor or
 * switch to another library someday.
 */

var (
	titleStyle    = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	sectionStyle  = lipgloss.NewStyle().MarginLeft(2)
	taskStyle     = lipgloss.NewStyle().PaddingLeft(4)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle     = lipgloss.NewStyle().PaddingLeft(2).Faint(true)
	quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)

	// One color per rainbow slot
	rainbowColors = []string{"#E53935", "#F4511E", "#FDD835", "#43A047", "#1E88E5", "#3949AB", "#8E24AA"}
)

type focusArea int

const (
	focusInput focusArea = iota
	focusTasks
)

type checkinModel struct {
	session  mood.Session
	input    textinput.Model
	focus    focusArea
	cursor   int
	quitting bool
}

func newCheckinModel(session mood.Session) checkinModel {
	input := textinput.New()
	input.Placeholder = "今天的心情如何？"
	input.CharLimit = 120
	input.Width = 42
	input.Focus()

	return checkinModel{
		session: session,
		input:   input,
	}
}

// RunCheckin drives the interactive widget and returns the final session.
func RunCheckin(session mood.Session) mood.Session {
	res, err := tea.NewProgram(newCheckinModel(session)).Run()
	if err != nil {
		log.Fatal(err)
	}
	return res.(checkinModel).session
}

func (m checkinModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m checkinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		if m.session.Current != "" {
			m.toggleFocus()
		}
		return m, nil
	}

	if m.focus == focusTasks {
		return m.updateTasks(keyMsg)
	}

	if keyMsg.String() == "enter" {
		if text.IsBlank(m.input.Value()) {
			return m, nil
		}
		m.session = m.session.CheckIn(m.input.Value(), clock.Now())
		m.cursor = 0
		m.toggleFocus()
		return m, nil
	}

	return m.updateInput(msg)
}

func (m *checkinModel) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusTasks
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.input.Focus()
	}
}

func (m checkinModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m checkinModel) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	preset := m.session.CurrentPreset()
	if preset == nil {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(preset.Tasks)-1 {
			m.cursor++
		}
	case "enter", " ":
		task := preset.Tasks[m.cursor]
		m.session = m.session.CompleteTask(mood.TaskID(task))
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m checkinModel) View() string {
	if m.quitting {
		if m.session.Current == "" {
			return ""
		}
		return quitTextStyle.Render(fmt.Sprintf("%d points today. Take care.", m.session.Points))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("How do you feel?"))
	sb.WriteString("\n\n")
	sb.WriteString(sectionStyle.Render(m.input.View()))
	sb.WriteString("\n")

	if preset := m.session.CurrentPreset(); preset != nil {
		sb.WriteString(m.viewResult(preset))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.helpLine()))
	sb.WriteString("\n")
	return sb.String()
}

func (m checkinModel) viewResult(preset *mood.EmotionPreset) string {
	style := mood.StyleFor(preset.Key)
	banner := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(style.Color))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Accent))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render(banner.Render(fmt.Sprintf("%s (%s)", preset.Name, preset.Key))))
	sb.WriteString(accent.Render(fmt.Sprintf("  valence %+.1f", preset.Valence)))
	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render(accent.Render("「" + text.Ellipsis(m.session.Text, 36) + "」")))
	sb.WriteString("\n\n")

	for i, task := range preset.Tasks {
		label := "[ ] " + task
		if m.session.TaskCompleted(mood.TaskID(task)) {
			label = "[x] " + task
		}
		if m.focus == focusTasks && i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + label))
		} else {
			sb.WriteString(taskStyle.Render(label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render(m.viewRainbow()))
	sb.WriteString(fmt.Sprintf("  %d points", m.session.Points))
	sb.WriteString("\n\n")
	sb.WriteString(m.viewJourney())
	return sb.String()
}

func (m checkinModel) viewRainbow() string {
	var sb strings.Builder
	for i, lit := range m.session.Rainbow {
		slot := "○"
		if lit {
			slot = lipgloss.NewStyle().Foreground(lipgloss.Color(rainbowColors[i])).Render("●")
		}
		sb.WriteString(slot)
	}
	return sb.String()
}

func (m checkinModel) viewJourney() string {
	var sb strings.Builder
	for _, entry := range m.session.Journey {
		sb.WriteString(taskStyle.Render(FormatJourneyRow(entry)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m checkinModel) helpLine() string {
	if m.focus == focusTasks {
		return "↑/↓ move · enter complete · tab edit mood · esc quit"
	}
	return "enter check in · esc quit"
}
