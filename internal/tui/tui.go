package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kevontheweb/ut61e-plus-logger/internal/poller"
	"github.com/kevontheweb/ut61e-plus-logger/internal/ut61e"
)

// the screen refreshes a little faster than the meter updates so a
// fresh reading never waits a full frame
const REFRESH_INTERVAL = 150 * time.Millisecond

type tickMsg time.Time

// TUI tries to use functional programming paradigms, so you return a new model everytime, rather
// then modify a pointer
type model struct {
	poller *poller.Poller

	latest *ut61e.Measurement
	window []float64
	width  int
}

func StartApplication(p *poller.Poller, logger *zap.Logger) {
	if _, err := tea.NewProgram(initialModel(p), tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal("Error starting TUI program", zap.Error(err))
	}
}

func initialModel(p *poller.Poller) model {
	return model{
		poller: p,
		width:  80,
	}
}

func tick() tea.Cmd {
	return tea.Tick(REFRESH_INTERVAL, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		m.latest, m.window = m.poller.Snapshot()
		return m, tick()
	}

	return m, nil
}

func (m model) View() string {
	s := headerStyle.Render("UT61E+ Live") + "\n"

	if m.latest == nil {
		s += containerStyle.Render(waitingStyle.Render("waiting for the meter…")) + "\n"
		s += hintStyle.Render("q to quit")
		return s
	}

	headline := valueStyle.Render(fmt.Sprintf("%10.4f %s", m.latest.Value, m.latest.Unit))

	info := fmt.Sprintf("%s %s\n%s %s\n%s %s  %s  %s",
		labelStyle.Render("Mode: "), fieldStyle.Render(m.latest.Mode),
		labelStyle.Render("Range:"), fieldStyle.Render(m.latest.AutoManual),
		labelStyle.Render("Flags:"),
		renderFlag(m.latest.Rel, "REL"),
		renderFlag(m.latest.Hold, "HOLD"),
		renderFlag(m.latest.MinMax, "MIN/MAX"),
	)

	plotWidth := m.width - 4
	if plotWidth > len(m.window) {
		plotWidth = len(m.window)
	}

	s += containerStyle.Render(headline+"\n\n"+info) + "\n"
	s += containerStyle.Render(renderSparkline(m.window, plotWidth)) + "\n"
	s += hintStyle.Render("q to quit")

	return s
}
