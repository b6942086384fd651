package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/csheth/teletext/internal/nav"
	"github.com/csheth/teletext/internal/teletext"
)

// Config wires runtime options into the TUI program.
type Config struct {
	BaseURL   string
	StartPage int
	Width     int
	Logger    zerolog.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.StartPage == 0 {
		config.StartPage = teletext.StartPage
	}
	if config.Width <= 0 {
		config.Width = DefaultWidth
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	client := teletext.NewClient(config.BaseURL, nil)

	return &model{
		config:  config,
		stage:   stageBooting,
		client:  client,
		service: teletext.NewService(client, config.Width),
		state:   nav.NewState(config.StartPage),
		keys:    defaultKeyMap(),
		spinner: spin,
		now:     time.Now(),
		log:     config.Logger,
	}
}

type model struct {
	config Config
	stage  stage

	client  *teletext.Client
	service *teletext.Service
	index   *teletext.Index

	state   *nav.State
	frame   *teletext.Frame
	loading bool

	keys    keyMap
	spinner spinner.Model
	now     time.Time
	log     zerolog.Logger
}

type bootMsg struct {
	index *teletext.Index
	state *nav.State
	frame *teletext.Frame
}

type navResultMsg struct {
	command nav.Command
	state   *nav.State
	frame   *teletext.Frame
	err     error
}

type clockTickMsg time.Time

func (m *model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.bootCmd(), clockTick())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case bootMsg:
		m.stage = stageView
		m.loading = false
		m.index = msg.index
		m.state = msg.state
		m.frame = msg.frame
		return m, nil
	case navResultMsg:
		return m.handleNavResult(msg)
	case clockTickMsg:
		// Idle refresh of the clock only; never touches navigation.
		m.now = time.Time(msg)
		return m, clockTick()
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// One outstanding navigation at a time: input is dropped until the
	// in-flight load resolves.
	if m.loading || m.stage == stageBooting {
		return m, nil
	}
	command, ok := m.keys.commandFor(msg)
	if !ok {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.stepCmd(command))
}

func (m *model) handleNavResult(msg navResultMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.state = msg.state
	if msg.err != nil {
		m.log.Warn().
			Err(msg.err).
			Str("command", fmt.Sprintf("%T", msg.command)).
			Int("page", msg.state.Page).
			Int("subPage", msg.state.SubPage).
			Msg("navigation failed, keeping current page")
		return m, nil
	}
	if msg.frame != nil {
		m.frame = msg.frame
	}
	return m, nil
}

func (m *model) navConfig() nav.Config {
	return nav.Config{
		StartPage: m.config.StartPage,
		Index:     m.index,
		Loader:    m.service,
	}
}

func (m *model) bootCmd() tea.Cmd {
	client := m.client
	service := m.service
	startPage := m.config.StartPage
	log := m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		index, err := client.FetchIndex(ctx)
		if err != nil {
			// Non-fatal: with an absent index every page lookup falls
			// back to the start page.
			log.Error().Err(err).Msg("page index unavailable")
			index = nil
		}

		state := nav.NewState(startPage)
		cfg := nav.Config{StartPage: startPage, Index: index, Loader: service}
		frame, err := nav.Step(ctx, state, cfg, nav.GoToPage{Page: startPage})
		if err != nil {
			log.Warn().Err(err).Int("page", startPage).Msg("start page load failed")
		}
		return bootMsg{index: index, state: state, frame: frame}
	}
}

func (m *model) stepCmd(command nav.Command) tea.Cmd {
	state := m.state.Clone()
	cfg := m.navConfig()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		frame, err := nav.Step(ctx, state, cfg, command)
		return navResultMsg{command: command, state: state, frame: frame, err: err}
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("0"))
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	helperStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
