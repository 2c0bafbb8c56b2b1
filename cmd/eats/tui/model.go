// Package tui provides the interactive terminal interface for campuseats.
// The functionality is split across files in the usual way:
//   - model.go: types, construction, Init (this file)
//   - update.go: the Update loop and key handling
//   - view.go: rendering for all panes and overlays
//   - commands.go: tea.Cmd producers for network work
//   - items.go: restaurant list items
//   - forms.go: login/register/profile form state
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"campuseats/cmd/eats/ui"
	"campuseats/internal/api"
	"campuseats/internal/config"
	"campuseats/internal/directory"
	"campuseats/internal/geo"
	"campuseats/internal/i18n"
	"campuseats/internal/menu"
	"campuseats/internal/session"
)

// ViewMode determines which surface is focused.
type ViewMode int

const (
	ListView ViewMode = iota
	MenuOverlay
	LoginFormView
	RegisterFormView
	ProfileFormView
)

// filters is the current AND-combined predicate selection. Empty fields
// disable their predicate.
type filters struct {
	city     string
	provider string
	search   string
}

// Model is the bubbletea model for the interactive interface.
type Model struct {
	// Backend
	cfg      *config.Config
	client   *api.Client
	sessions *session.Manager
	dir      *directory.Directory
	viewer   *menu.Viewer
	locator  *geo.Locator
	logger   *zap.Logger

	// UI components
	styles    ui.Styles
	list      list.Model
	search    textinput.Model
	spinner   spinner.Model
	overlay   viewport.Model
	mapPane   *ui.MapView
	renderer  *glamour.TermRenderer
	form      *formState
	translate *i18n.Translator

	// State
	viewMode    ViewMode
	filter      filters
	location    *geo.Point
	overlayText string
	notice      string
	loading     bool
	width       int
	height      int
	ready       bool
	err         error

	// notices carries user-facing notifications out of API calls running
	// in command goroutines; Update drains it via listenNotices.
	notices chan notice

	// cfgCh carries config file reloads from the watcher goroutine into
	// the update loop.
	cfgCh chan *config.Config

	kv      *session.KV
	ctx     context.Context
	cancel  context.CancelFunc
	stopCfg func()
}

type notice struct {
	severity api.Severity
	text     string
}

// New assembles the interactive model. The API client is built around a
// notifier that feeds the TUI's blocking notice modal.
func New(cfg *config.Config, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	kv, err := session.OpenKV(cfg.Data.StorePath)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(kv, logger, nil)
	sessions.Restore()

	lang := sessions.Language()
	if lang == "" {
		lang = cfg.UI.Language
	}

	m := &Model{
		cfg:       cfg,
		sessions:  sessions,
		logger:    logger,
		translate: i18n.New(lang),
		notices:   make(chan notice, 8),
		cfgCh:     make(chan *config.Config, 1),
		kv:        kv,
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())

	notifier := api.NotifierFunc(func(severity api.Severity, message string) {
		select {
		case m.notices <- notice{severity, message}:
		default:
			// A full queue means a notice modal is already pending; the
			// triggering error still reaches the caller.
		}
	})

	m.client = api.NewClient(cfg.API.BaseURL, sessions, notifier,
		api.WithLogger(logger), api.WithTimeout(cfg.APITimeout()))
	m.dir = directory.New(m.client, logger)
	m.viewer = menu.NewViewer(m.client, logger)
	m.locator = geo.NewLocator(locatorConfig(cfg), logger)

	m.applyTheme(sessions.Theme())

	m.search = textinput.New()
	m.search.Placeholder = m.translate.T("search")
	m.search.CharLimit = 60

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	delegate := list.NewDefaultDelegate()
	m.list = list.New(nil, delegate, 0, 0)
	m.list.SetShowTitle(false)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(false) // filtering runs through the directory
	m.list.SetShowHelp(false)

	m.mapPane = ui.NewMapView(m.styles)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err == nil {
		m.renderer = renderer
	}

	// Config file edits flow into the update loop the same way notices do.
	cfgPath := cfg.Path()
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	m.stopCfg, _ = config.Watch(cfgPath, logger, func(next *config.Config) {
		select {
		case m.cfgCh <- next:
		default:
		}
	})

	return m, nil
}

func locatorConfig(cfg *config.Config) geo.LocatorConfig {
	lc := geo.LocatorConfig{Endpoint: cfg.Location.Endpoint}
	if cfg.Location.Lat != 0 || cfg.Location.Lon != 0 {
		lc.Fixed = &geo.Point{Lat: cfg.Location.Lat, Lon: cfg.Location.Lon}
	}
	return lc
}

func (m *Model) applyTheme(name string) {
	m.styles = ui.NewStyles(ui.ThemeByName(name))
	if m.mapPane != nil {
		m.mapPane.SetStyles(m.styles)
	}
}

// Init kicks off the initial refresh, the location race, and the notice
// listener.
func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(
		m.spinner.Tick,
		m.refreshCmd(),
		m.locateCmd(),
		m.listenNotices(),
		m.listenConfig(),
	)
}

// Close releases background resources. Called when the program exits.
func (m *Model) Close() {
	if m.stopCfg != nil {
		m.stopCfg()
	}
	m.cancel()
	if m.kv != nil {
		_ = m.kv.Close()
	}
}
