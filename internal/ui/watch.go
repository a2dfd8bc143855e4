package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusboss/internal/domain"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
	"focusboss/internal/services"
	"focusboss/internal/theme"
	"focusboss/internal/version"
)

// DefaultPollEvery matches the desktop frontend's polling interval
const DefaultPollEvery = time.Minute

const barWidth = 30

// WatchModel is the dashboard that polls the server and shows the day's totals
type WatchModel struct {
	api         ports.FocusAPI
	day         *ports.DayInfo
	end         *ports.DayEnd
	err         error
	every       time.Duration
	help        help.Model
	keys        watchKeys
	lastMessage string
	lastNudgeAt time.Time
	loading     bool
	noDay       bool
	notifier    *services.NotificationService
	spinner     spinner.Model
	status      *ports.DayStatus
	timeout     time.Duration
	width       int
}

// NewWatchModel creates the dashboard. notifier may be nil to stay silent.
func NewWatchModel(api ports.FocusAPI, notifier *services.NotificationService, every, timeout time.Duration) *WatchModel {
	if every <= 0 {
		every = DefaultPollEvery
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	h := help.New()
	h.Styles.ShortKey = theme.HelpShortcutStyle
	h.Styles.FullKey = theme.HelpShortcutStyle

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorNudge)

	return &WatchModel{
		api:      api,
		every:    every,
		help:     h,
		keys:     newWatchKeys(),
		loading:  true,
		notifier: notifier,
		spinner:  s,
		timeout:  timeout,
	}
}

// Init implements tea.Model
func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchDay(), m.fetchStatus())
}

// Update implements tea.Model
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.end != nil {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.fetchDay(), m.fetchStatus())
		case key.Matches(msg, m.keys.EndDay):
			if m.end != nil || m.noDay {
				return m, nil
			}
			m.loading = true
			return m, m.endDay()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if m.end != nil {
			return m, nil
		}
		return m, m.fetchStatus()

	case dayMsg:
		if msg.err == nil {
			m.day = msg.day
		}
		return m, nil

	case statusMsg:
		return m, m.handleStatus(msg)

	case endMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.end = msg.end
		m.err = nil
		return m, m.notify(func(n *services.NotificationService) { n.NotifyDay("end") })
	}

	return m, nil
}

func (m *WatchModel) handleStatus(msg statusMsg) tea.Cmd {
	m.loading = false
	next := m.scheduleTick()

	if msg.err != nil {
		m.noDay = errors.Is(msg.err, domain.ErrNoActiveSession)
		if !m.noDay {
			m.err = msg.err
		}
		return next
	}

	m.err = nil
	m.noDay = false
	m.status = msg.status
	if msg.status.Message == "" {
		return next
	}

	m.lastMessage = msg.status.Message
	m.lastNudgeAt = time.Now()
	logging.Logger.Info("Nudge received", "kind", msg.status.NudgeKind)

	kind := msg.status.NudgeKind
	if kind == "" {
		kind = domain.NudgeDistraction
	}
	return tea.Batch(next, m.notify(func(n *services.NotificationService) { n.NotifyNudge(kind) }))
}

func (m *WatchModel) notify(fn func(*services.NotificationService)) tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	n := m.notifier
	return func() tea.Msg {
		fn(n)
		return nil
	}
}

func (m *WatchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *WatchModel) fetchStatus() tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		status, err := api.Status(ctx)
		return statusMsg{err: err, status: status}
	}
}

func (m *WatchModel) fetchDay() tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		day, err := api.CurrentDay(ctx)
		return dayMsg{day: day, err: err}
	}
}

func (m *WatchModel) endDay() tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		end, err := api.EndDay(ctx)
		return endMsg{end: end, err: err}
	}
}

// View implements tea.Model
func (m *WatchModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(
		theme.AppNameStyle.Render(version.Name) + " " + theme.VersionStyle.Render(version.Version)))
	b.WriteString("\n")

	if m.day != nil {
		b.WriteString(theme.LabelStyle.Render("Persona") + theme.PersonaStyle.Render(m.day.PersonaName) + "\n")
		goals := m.day.Goals
		if goals == "" {
			goals = "not specified"
		}
		b.WriteString(theme.LabelStyle.Render("Goals") + theme.NormalStyle.Render(goals) + "\n")
		b.WriteString(theme.LabelStyle.Render("Started") + theme.NormalStyle.Render(m.day.StartedAt.Local().Format("15:04")) + "\n\n")
	}

	switch {
	case m.end != nil:
		b.WriteString(renderTotals(m.end.Totals))
		b.WriteString("\n" + theme.NudgeStyle.Render(m.end.Report) + "\n")
	case m.noDay:
		b.WriteString(theme.NormalStyle.Render("No day in progress. Start one with: focusboss day start --persona <id>") + "\n")
	case m.status != nil:
		b.WriteString(renderTotals(m.status.Totals))
	case m.loading:
		b.WriteString(m.spinner.View() + " " + theme.NormalStyle.Render("Contacting server...") + "\n")
	}

	if m.lastMessage != "" && m.end == nil {
		b.WriteString("\n" + theme.NudgeStyle.Render(m.lastMessage) + "\n")
		b.WriteString(theme.HelpLabelStyle.Render("at "+m.lastNudgeAt.Format("15:04")) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + theme.ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// renderTotals draws one proportional bar per bucket
func renderTotals(t domain.Totals) string {
	total := t.Work + t.Distraction + t.Idle

	rows := []struct {
		d     time.Duration
		label string
		style lipgloss.Style
	}{
		{t.Work, "Work", theme.WorkStyle},
		{t.Distraction, "Distraction", theme.DistractionStyle},
		{t.Idle, "Idle", theme.IdleStyle},
	}

	var b strings.Builder
	for _, r := range rows {
		filled := 0
		if total > 0 {
			filled = int(int64(barWidth) * int64(r.d) / int64(total))
		}
		bar := r.style.Render(strings.Repeat("█", filled)) + theme.HelpLabelStyle.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%s%s %s\n", theme.LabelStyle.Render(r.label), bar, r.style.Render(services.FormatMinutes(r.d)))
	}
	return b.String()
}
