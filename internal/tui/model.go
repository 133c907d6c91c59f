package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textlens/internal/domain"
	"textlens/internal/sentiment"
	"textlens/internal/wordcloud"
)

// AnalyzerPort is the TUI-facing subset of the analysis service.
type AnalyzerPort interface {
	AnalyzeText(ctx context.Context, source, text string) (*domain.Analysis, error)
}

// emptyInputWarning is shown when analysis is requested on blank input.
const emptyInputWarning = "Please enter some text!"

type analysisDoneMsg struct {
	analysis *domain.Analysis
	err      error
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	ctx        context.Context
	service    AnalyzerPort
	input      textarea.Model
	viewport   viewport.Model
	result     *domain.Analysis
	status     string
	busy       bool
	showCloud  bool
	ready      bool
	width      int
	height     int
	cloudWidth int
}

// New creates a new TUI model instance. initial pre-fills the text area and
// ctx is passed to every analysis.
func New(ctx context.Context, service AnalyzerPort, initial string, cloudWidth int) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ta := textarea.New()
	ta.Placeholder = "Paste or type your text here"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(initial)
	ta.Focus()
	vp := viewport.New(0, 0)
	return Model{
		ctx:        ctx,
		service:    service,
		input:      ta,
		viewport:   vp,
		status:     "ctrl+s analyze · tab word cloud · esc quit",
		cloudWidth: cloudWidth,
	}
}

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case analysisDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.analysis
		m.status = fmt.Sprintf("Analyzed %d sentences", msg.analysis.SentenceCount)
		m.viewport.SetContent(m.renderSummary())
		m.viewport.GotoTop()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.showCloud {
				m.showCloud = false
				return m, nil
			}
			return m, tea.Quit
		case tea.KeyTab:
			if m.result != nil {
				m.showCloud = !m.showCloud
			}
			return m, nil
		case tea.KeyCtrlS:
			return m.analyze()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	if m.showCloud {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) analyze() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.status = emptyInputWarning
		return m, nil
	}
	m.busy = true
	m.showCloud = false
	m.status = "Analyzing..."
	ctx, svc := m.ctx, m.service
	return m, func() tea.Msg {
		res, err := svc.AnalyzeText(ctx, "tui", text)
		return analysisDoneMsg{analysis: res, err: err}
	}
}

func (m *Model) layout() {
	fw, fh := boxStyle.GetFrameSize()
	inner := max(20, m.width-fw)
	m.input.SetWidth(inner)
	inputHeight := max(3, m.height/3)
	m.input.SetHeight(inputHeight)

	// title + sentiment + status lines plus two boxes
	reserved := 3 + inputHeight + 2*fh
	m.viewport.Width = inner
	m.viewport.Height = max(3, m.height-reserved)
	m.viewport.SetContent(m.renderSummary())
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("Text Summarizer + Sentiment + Word Cloud")
	status := statusStyle.Render(m.status)
	if m.showCloud && m.result != nil {
		cloud := popupStyle.Render(
			titleStyle.Render("Word Cloud") + "\n\n" +
				wordcloud.RenderTerminal(m.result.Words, m.cloudPanelWidth()))
		return header + "\n" + lipgloss.Place(m.width, max(1, m.height-2), lipgloss.Center, lipgloss.Center, cloud) + "\n" + status
	}
	input := boxStyle.Render(m.input.View())
	summary := boxStyle.Render(m.viewport.View())
	return header + "\n" + input + "\n" + m.renderSentiment() + "\n" + summary + "\n" + status
}

func (m Model) cloudPanelWidth() int {
	w := m.cloudWidth
	if w <= 0 || w > m.width-6 {
		w = m.width - 6
	}
	return max(10, w)
}

func (m Model) renderSentiment() string {
	if m.result == nil {
		return sentimentStyle.Render("Sentiment: ")
	}
	label := polarityLabel(m.result.Polarity)
	return sentimentStyle.Render("Sentiment: " + label)
}

func (m Model) renderSummary() string {
	if m.result == nil {
		return "Summary:\n\nNo summary yet."
	}
	return "Summary:\n\n" + m.result.Summary
}

func polarityLabel(name string) string {
	if p, ok := sentiment.Parse(name); ok {
		return p.Label()
	}
	return name
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4b0082"))
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	popupStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2)
	sentimentStyle = lipgloss.NewStyle().Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
