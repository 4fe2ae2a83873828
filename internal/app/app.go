// Package app contains the root application model: a scrollable page of
// sections with the navigation menu in its header.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/navdrawer/internal/config"
	"github.com/zjrosen/navdrawer/internal/hotkey"
	"github.com/zjrosen/navdrawer/internal/keys"
	"github.com/zjrosen/navdrawer/internal/log"
	"github.com/zjrosen/navdrawer/internal/navmenu"
	"github.com/zjrosen/navdrawer/internal/pubsub"
	"github.com/zjrosen/navdrawer/internal/ui/markdown"
	"github.com/zjrosen/navdrawer/internal/ui/overlay"
	"github.com/zjrosen/navdrawer/internal/ui/styles"
	"github.com/zjrosen/navdrawer/internal/ui/toaster"
	"github.com/zjrosen/navdrawer/internal/watcher"
)

// Options holds runtime settings that do not come from the config file.
type Options struct {
	// ConfigPath is reloaded on change when cfg.WatchConfig is set.
	ConfigPath string
	// Debug shows the latest log entry in the status line.
	Debug bool
	// MarkdownStyle is the glamour style for section bodies.
	MarkdownStyle string
}

// Model is the root application state.
type Model struct {
	cfg  config.Config
	opts Options

	keys     keys.PageKeyMap
	hotkeys  *hotkey.Registry
	menu     navmenu.Model
	viewport viewport.Model
	help     help.Model

	renderer *markdown.Renderer
	sections *sectionCache
	page     page

	toaster toaster.Model
	status  string
	lastLog string

	width  int
	height int

	ctx    context.Context
	cancel context.CancelFunc

	menuEvents   *pubsub.Broker[navmenu.Change]
	menuListener *pubsub.Feed[navmenu.Change]
	logListener  *log.LogListener

	watcherHandle *watcher.Watcher
	watchCh       <-chan struct{}
}

// NewWithConfig creates the application model. Call Close when the program
// exits.
func NewWithConfig(cfg config.Config, opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	km := keys.DefaultMenuKeyMap(cfg.ToggleKey)
	reg := hotkey.NewRegistry()
	events := pubsub.NewBroker[navmenu.Change]()

	m := Model{
		cfg:        cfg,
		opts:       opts,
		keys:       keys.DefaultPageKeyMap(km),
		hotkeys:    reg,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		toaster:    toaster.New(),
		sections:   newSectionCache(),
		ctx:        ctx,
		cancel:     cancel,
		menuEvents: events,
	}
	m.menu = navmenu.New(navmenu.Config{
		Label:    cfg.PanelLabel,
		Links:    navLinks(cfg.Links),
		CTA:      navmenu.Link(cfg.CTA),
		Keys:     &km,
		Hotkeys:  reg,
		Events:   events,
		Position: overlay.TopRight,
	})
	m.menuListener = pubsub.NewFeed(ctx, events, pubsub.OpenedEvent, pubsub.ClosedEvent)

	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}

	if cfg.WatchConfig && opts.ConfigPath != "" {
		m.watcherHandle, m.watchCh = startWatcher(opts.ConfigPath)
	}

	return m
}

// newWatcher is replaced in tests.
var newWatcher = watcher.New

// startWatcher returns nils when the config cannot be watched.
// The page works without hot reload.
func startWatcher(path string) (*watcher.Watcher, <-chan struct{}) {
	w, err := newWatcher(watcher.DefaultConfig(path))
	if err != nil {
		log.Warn(log.CatWatcher, "failed to create config watcher", "path", path, "error", err)
		return nil, nil
	}
	ch, err := w.Start()
	if err != nil {
		log.Warn(log.CatWatcher, "failed to start config watcher", "path", path, "error", err)
		_ = w.Stop()
		return nil, nil
	}
	return w, ch
}

func navLinks(links []config.LinkConfig) []navmenu.Link {
	out := make([]navmenu.Link, len(links))
	for i, l := range links {
		out[i] = navmenu.Link(l)
	}
	return out
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.menuListener.Next()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Next())
	}
	if m.watchCh != nil {
		cmds = append(cmds, watcher.WaitCmd(m.opts.ConfigPath, m.watchCh))
	}
	return tea.Batch(cmds...)
}

// Menu returns the navigation menu.
func (m Model) Menu() navmenu.Model {
	return m.menu
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.layout(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case navmenu.CloseMsg:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case navmenu.NavigateMsg:
		return m.navigate(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case pubsub.Event[navmenu.Change]:
		c := msg.Payload
		m.status = fmt.Sprintf("menu %s (%s)", c.Transition, c.Reason)
		return m, m.menuListener.Next()

	case log.LogEvent:
		m.lastLog = msg.Payload
		return m, m.logListener.Next()

	case watcher.ChangedMsg:
		var cmd tea.Cmd
		m, cmd = m.reloadConfig(msg.Path)
		if m.watchCh == nil {
			return m, cmd
		}
		return m, tea.Batch(cmd, watcher.WaitCmd(m.opts.ConfigPath, m.watchCh))
	}

	return m, nil
}

// handleKey routes keys: registry listeners first so that a held Escape
// listener suppresses everything else, then the menu, then the page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if cmd, handled := m.hotkeys.Dispatch(msg); handled {
		return m, cmd
	}

	if m.menu.IsOpen() || m.menu.HandlesKey(msg) {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.layout(), nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wasOpen := m.menu.IsOpen()

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if wasOpen || m.menu.IsOpen() {
		return m, cmd
	}

	// Wheel scrolling reaches the page only while the menu is closed.
	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(cmd, vpCmd)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.menu = m.menu.Unmount()
	log.Info(log.CatUI, "quitting")
	return m, tea.Quit
}

// navigate scrolls the page to the section whose anchor matches the target.
func (m Model) navigate(msg navmenu.NavigateMsg) (Model, tea.Cmd) {
	line, ok := m.page.anchors[msg.Target]
	if !ok {
		log.Warn(log.CatUI, "no section for target", "target", msg.Target)
		m.status = "no section for " + msg.Target
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(m.status, toaster.LevelWarn, toaster.DefaultDuration)
		return m, cmd
	}
	m.viewport.SetYOffset(line)
	m.status = "→ " + msg.Label
	log.Debug(log.CatUI, "navigated", "target", msg.Target, "line", line)
	return m, nil
}

func (m Model) reloadConfig(path string) (Model, tea.Cmd) {
	var cmd tea.Cmd

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err, "path", path)
		m.status = "config reload failed"
		m.toaster, cmd = m.toaster.Show(err.Error(), toaster.LevelError, toaster.DefaultDuration)
		return m, cmd
	}

	m.cfg.Links = cfg.Links
	m.cfg.CTA = cfg.CTA
	m.cfg.Sections = cfg.Sections
	m.menu = m.menu.SetLinks(navLinks(cfg.Links), navmenu.Link(cfg.CTA))
	m.sections.Invalidate(m.ctx)
	m.status = "config reloaded"
	log.Info(log.CatConfig, "config reloaded", "links", len(cfg.Links), "sections", len(cfg.Sections))
	m.toaster, cmd = m.toaster.Show(m.status, toaster.LevelSuccess, toaster.DefaultDuration)
	return m.rebuildPage(), cmd
}

// layout sizes the viewport and the menu's backdrop to the body area
// between the header and the footer.
func (m Model) layout() Model {
	if m.width <= 0 || m.height <= 0 {
		return m
	}
	m.help.Width = m.width

	bodyHeight := max(m.height-2-lipgloss.Height(m.help.View(m.keys)), 1)
	m.viewport.Width = m.width
	m.viewport.Height = bodyHeight
	m.menu = m.menu.SetSize(m.width, bodyHeight)

	if m.renderer == nil || m.renderer.Width() != m.width {
		r, err := markdown.New(m.width, m.opts.MarkdownStyle)
		if err != nil {
			log.ErrorErr(log.CatUI, "creating markdown renderer", err)
			return m
		}
		m.renderer = r
		return m.rebuildPage()
	}
	return m
}

func (m Model) rebuildPage() Model {
	if m.renderer == nil {
		return m
	}
	m.page = renderPage(m.ctx, m.sections, m.renderer, m.cfg.Sections)
	m.viewport.SetContent(m.page.content)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	body := m.menu.Overlay(m.viewport.View())
	body = m.toaster.Overlay(body, m.width, m.viewport.Height)
	view := strings.Join([]string{
		m.headerView(),
		body,
		m.statusView(),
		m.help.View(m.keys),
	}, "\n")

	return zone.Scan(view)
}

func (m Model) headerView() string {
	brand := styles.BrandStyle.Render(m.cfg.Brand)
	toggle := m.menu.View()
	gap := max(m.width-lipgloss.Width(brand)-lipgloss.Width(toggle), 0)
	return brand + styles.HeaderStyle.Render(strings.Repeat(" ", gap)) + toggle
}

func (m Model) statusView() string {
	status := m.status
	if m.opts.Debug && m.lastLog != "" {
		status += " · " + m.lastLog
	}
	return styles.StatusBarStyle.Render(ansi.Truncate(status, m.width, "…"))
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.menu = m.menu.Unmount()
	m.cancel()
	if st := m.menuEvents.Stats(); st.Dropped > 0 {
		log.Warn(log.CatUI, "menu events dropped", "published", st.Published, "dropped", st.Dropped)
	}
	m.menuEvents.Close()

	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return fmt.Errorf("stopping config watcher: %w", err)
		}
		m.watcherHandle = nil
	}
	return nil
}
