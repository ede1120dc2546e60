// Package tui is the terminal front-end: a transcript of the conversation,
// starter suggestions and a prompt line.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"proposal-assistant/internal/conversation"
	"proposal-assistant/internal/models"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-runewidth"
)

const (
	appTitle    = "DBT Proposal Research Assistant"
	appSubtitle = "AI-Enabled Imaging Biobank · Onco-pathology & Infectious Diseases · Hub-and-Spoke Model"

	headerHeight = 3 // title, subtitle, blank line
	footerHeight = 2 // status line, prompt

	idleHint    = "Enter Send | PgUp/PgDn Scroll | Ctrl+Y Copy reply | Esc Quit"
	welcomeHint = "Alt+1-6 Pick a topic | Enter Send | Esc Quit"
	copiedHint  = "Copied the last reply to the clipboard"
)

// replyMsg carries the outcome of a chat request back into Update.
type replyMsg struct {
	reply string
	err   error
}

// Options configures a Model.
type Options struct {
	Sender    conversation.Sender
	Renderer  Renderer
	Logger    *slog.Logger
	Clipboard io.Writer // Receives OSC52 sequences, defaults to stdout
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	state conversation.State

	sender      conversation.Sender
	renderer    Renderer
	logger      *slog.Logger
	clipboard   io.Writer
	suggestions []conversation.Suggestion

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool
	notice string
}

// New creates the chat screen model.
func New(opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = PlainRenderer{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = os.Stdout
	}

	input := textinput.New()
	input.Placeholder = "Ask me anything about your DBT proposal..."
	input.Prompt = "› "
	input.Focus()

	return Model{
		sender:      opts.Sender,
		renderer:    opts.Renderer,
		logger:      opts.Logger,
		clipboard:   opts.Clipboard,
		suggestions: conversation.Suggestions(),
		input:       input,
		viewport:    viewport.New(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(assistantLabelStyle)),
	}
}

// State returns the conversation held by the model.
func (m Model) State() conversation.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(max(1, msg.Height-headerHeight-footerHeight))
		m.input.SetWidth(max(10, msg.Width-4))
		m.refreshTranscript()
		return m, nil

	case replyMsg:
		if msg.err != nil {
			m.logger.Warn("reply unavailable, using fallback", slog.Any("error", msg.err))
		}
		m.state = m.state.Complete(msg.reply, msg.err)
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch key := msg.String(); key {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if m.state.Pending {
			return m, nil
		}
		return m.submit(m.input.Value())

	case "ctrl+y":
		return m, m.copyLastReply()

	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		if s, ok := m.suggestionFor(key); ok {
			return m.submit(s.Prompt)
		}
	}

	// The prompt line is read-only while a reply is outstanding.
	if m.state.Pending {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.WithInput(m.input.Value())
	return m, cmd
}

// suggestionFor maps alt+1 through alt+9 to starter prompts. Suggestions
// can only be picked before the first exchange.
func (m Model) suggestionFor(key string) (conversation.Suggestion, bool) {
	if !m.state.Empty() || m.state.Pending {
		return conversation.Suggestion{}, false
	}
	digit, ok := strings.CutPrefix(key, "alt+")
	if !ok || len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return conversation.Suggestion{}, false
	}
	idx := int(digit[0] - '1')
	if idx >= len(m.suggestions) {
		return conversation.Suggestion{}, false
	}
	return m.suggestions[idx], true
}

func (m Model) submit(prompt string) (tea.Model, tea.Cmd) {
	next, history, ok := m.state.Submit(prompt)
	if !ok {
		return m, nil
	}
	m.state = next
	m.input.Reset()
	m.refreshTranscript()
	return m, tea.Batch(m.requestReply(history), m.spinner.Tick)
}

func (m Model) requestReply(history []models.Message) tea.Cmd {
	sender := m.sender
	return func() tea.Msg {
		reply, err := sender.Send(context.Background(), history)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *Model) copyLastReply() tea.Cmd {
	reply, ok := m.state.LastReply()
	if !ok {
		return nil
	}
	m.notice = copiedHint
	out := m.clipboard
	return func() tea.Msg {
		if _, err := fmt.Fprint(out, osc52.New(reply)); err != nil {
			m.logger.Warn("copy to clipboard failed", slog.Any("error", err))
		}
		return nil
	}
}

// refreshTranscript re-renders every message into the viewport and
// scrolls to the newest one.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m Model) transcript() string {
	if m.state.Empty() {
		return m.welcome()
	}

	width := max(20, m.width-2)
	var b strings.Builder
	for i, msg := range m.state.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		switch msg.Role {
		case models.RoleUser:
			b.WriteString(userLabelStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(userTextStyle.Width(width).Render(msg.Content))
			b.WriteString("\n")
		default:
			b.WriteString(assistantLabelStyle.Render("Assistant"))
			b.WriteString("\n")
			b.WriteString(m.renderMarkdown(msg.Content, width))
		}
	}
	return b.String()
}

func (m Model) renderMarkdown(md string, width int) string {
	out, err := m.renderer.Render(md, width)
	if err != nil {
		m.logger.Warn("markdown render failed, showing source", slog.Any("error", err))
		return md + "\n"
	}
	return out
}

func (m Model) welcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome, Researcher!"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Width(max(20, m.width-2)).Render(
		"I'm your research associate for biomedical imaging, AI diagnostics and large-scale research infrastructure. " +
			"Pick a topic or ask anything about your DBT proposal."))
	b.WriteString("\n\n")

	// Cards are laid out two per row when the terminal is wide enough.
	perRow := 1
	if m.width >= 72 {
		perRow = 2
	}
	cardWidth := max(20, m.width/perRow-2)
	labelWidth := cardWidth - 12 // border, padding, key and icon

	var row []string
	for i, s := range m.suggestions {
		label := runewidth.Truncate(s.Label, labelWidth, "…")
		card := cardStyle.Width(cardWidth).Render(
			fmt.Sprintf("%s %s %s", cardKeyStyle.Render(fmt.Sprintf("Alt+%d", i+1)), s.Icon, label))
		row = append(row, card)
		if len(row) == perRow || i == len(m.suggestions)-1 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
			b.WriteString("\n")
			row = row[:0]
		}
	}
	return b.String()
}

// render builds the full screen.
func (m Model) render() string {
	if !m.ready {
		return "Initializing..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(appTitle),
		subtitleStyle.Render(runewidth.Truncate(appSubtitle, m.width, "…")),
		"",
	)

	var status string
	switch {
	case m.state.Pending:
		status = m.spinner.View() + " " + footerStyle.Render("Drafting a reply...")
	case m.notice != "":
		status = footerStyle.Render(m.notice)
	case m.state.Empty():
		status = footerStyle.Render(welcomeHint)
	default:
		status = footerStyle.Render(idleHint)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		status,
		m.input.View(),
	)
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}
