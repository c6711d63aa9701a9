package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tadkalabs/tadka/internal/feed"
	"github.com/tadkalabs/tadka/internal/rail"
	"github.com/tadkalabs/tadka/internal/shared"
	"github.com/tadkalabs/tadka/internal/store"
	"github.com/tadkalabs/tadka/internal/tasks"
	"github.com/tadkalabs/tadka/internal/viewer"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	ViewerView
	RefreshView
)

// tabScrollInterval paces the tab bar marquee.
const tabScrollInterval = 250 * time.Millisecond

// Opts configures a TUI [Model].
type Opts struct {
	Section   string    // Section slug to browse
	PortalURL string    // Base URL for opening article/video routes in the browser
	Rail      rail.Opts // Display limit, thumbnail quality, fallback pool
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	service  feed.Service
	tabs     *store.TabStore
	engine   *tasks.RefreshEngine
	opts     Opts
	width    int
	height   int
	rail     *rail.Rail
	viewer   *viewer.Viewer
	platform *termPlatform
	itemList list.Model

	scroller  *rail.AutoScroller
	scrollCh  chan int
	tabOffset int

	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.RefreshRunResult

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, service feed.Service, tabs *store.TabStore, engine *tasks.RefreshEngine, opts Opts) *Model {
	platform := &termPlatform{}
	return &Model{
		ctx:      ctx,
		view:     BrowseView,
		service:  service,
		tabs:     tabs,
		engine:   engine,
		opts:     opts,
		platform: platform,
		viewer:   viewer.New(platform),
		itemList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init initializes the TUI by fetching the configured section.
func (m *Model) Init() tea.Cmd {
	return m.fetchSection()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.itemList.Width() == 0 {
			m.itemList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case ViewerView:
			return m.handleViewerKeys(msg)
		case RefreshView:
			return m.handleRefreshKeys(msg)
		}

	case sectionFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.stopMarquee()
			return m, tea.Quit
		}
		m.rail = rail.New(m.opts.Section, msg.group, m.opts.Rail)
		if m.tabs != nil {
			if saved, ok := m.tabs.Get(m.opts.Section); ok {
				m.rail.SetActiveTab(saved)
			}
		}
		m.rebuildList()
		return m, m.startMarquee()

	case tabScrollMsg:
		m.tabOffset = int(msg)
		return m, m.waitForScroll()

	case mediaLoadedMsg:
		if msg.err != nil {
			m.viewer.MediaFailed(msg.generation)
		} else {
			m.viewer.MediaLoaded(msg.generation, msg.width, msg.height)
		}
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case refreshDoneMsg:
		m.result = msg.result
		m.err = msg.err
		if m.progressChan != nil {
			m.progressChan = nil
		}
		m.view = BrowseView
		return m, m.fetchSection()
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view == BrowseView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case BrowseView:
		return m.renderBrowse()
	case ViewerView:
		return m.renderViewer()
	case RefreshView:
		return m.renderRefresh()
	default:
		return ""
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.stopMarquee()
		return m, tea.Quit

	case key.Matches(msg, m.keys.nextTab):
		if m.rail != nil {
			m.rail.NextTab()
			m.persistTab()
			m.rebuildList()
		}
		return m, nil

	case key.Matches(msg, m.keys.prevTab):
		if m.rail != nil {
			m.rail.PrevTab()
			m.persistTab()
			m.rebuildList()
		}
		return m, nil

	case key.Matches(msg, m.keys.refresh):
		if m.engine != nil {
			m.view = RefreshView
			return m, m.startRefresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.enter):
		if m.rail == nil {
			return m, nil
		}
		return m.openSelection(m.itemList.Index())
	}

	var cmd tea.Cmd
	m.itemList, cmd = m.itemList.Update(msg)
	return m, cmd
}

func (m *Model) openSelection(index int) (tea.Model, tea.Cmd) {
	switch sel := m.rail.Select(index).(type) {
	case rail.OpenViewer:
		m.viewer.Open(sel.Items, sel.StartIndex)
		if m.viewer.State() == viewer.Closed {
			return m, nil
		}
		m.view = ViewerView
		return m, m.loadCurrent()

	case rail.Navigate:
		if err := shared.OpenBrowser(m.opts.PortalURL + sel.Route); err != nil {
			m.err = err
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleViewerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.viewer.Close()
		m.stopMarquee()
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.viewer.HandleKey(viewer.KeyEscape)
		if m.viewer.State() == viewer.Closed {
			m.view = BrowseView
		}
		return m, nil

	case key.Matches(msg, m.keys.left):
		m.viewer.HandleKey(viewer.KeyArrowLeft)
		return m, m.loadCurrent()

	case key.Matches(msg, m.keys.right):
		m.viewer.HandleKey(viewer.KeyArrowRight)
		return m, m.loadCurrent()

	case key.Matches(msg, m.keys.fullscreen):
		m.viewer.ToggleFullscreen()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleRefreshKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		m.stopMarquee()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == BrowseView {
		m.itemList, cmd = m.itemList.Update(msg)
	}
	return m, cmd
}

func (m *Model) rebuildList() {
	visible := m.rail.VisibleItems()
	items := make([]list.Item, len(visible))
	for i, item := range visible {
		items[i] = mediaListItem{item: item}
	}
	m.itemList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.itemList.Title = fmt.Sprintf("%s / %s", m.opts.Section, m.rail.ActiveTab())
	m.itemList.SetSize(m.width-4, m.height-8)
}

func (m *Model) persistTab() {
	if m.tabs == nil {
		return
	}
	if err := m.tabs.Set(m.opts.Section, m.rail.ActiveTab()); err != nil {
		m.err = err
	}
}

func (m *Model) fetchSection() tea.Cmd {
	return func() tea.Msg {
		group, err := m.service.FetchSection(m.ctx, m.opts.Section)
		return sectionFetchedMsg{group: group, err: err}
	}
}

// loadCurrent resolves the viewer's pending frame. Terminal rendering has no
// decode step, so frames resolve immediately with a nominal landscape size.
func (m *Model) loadCurrent() tea.Cmd {
	generation := m.viewer.Generation()
	return func() tea.Msg {
		return mediaLoadedMsg{generation: generation, width: 1280, height: 720}
	}
}

// startMarquee restarts the tab bar scroller for the current rail. The
// scroller ticks on its own goroutine and hands offsets back through
// scrollCh so the update loop stays single-threaded.
func (m *Model) startMarquee() tea.Cmd {
	m.stopMarquee()
	if m.rail == nil {
		return nil
	}

	m.scrollCh = make(chan int, 1)
	ch := m.scrollCh
	m.scroller = rail.NewAutoScroller(tabScrollInterval, 1, len([]rune(m.marqueeText())), func(offset int) {
		select {
		case ch <- offset:
		default:
		}
	})
	m.scroller.Start()
	return m.waitForScroll()
}

func (m *Model) stopMarquee() {
	if m.scroller == nil {
		return
	}
	m.scroller.Stop()
	close(m.scrollCh)
	m.scroller = nil
	m.scrollCh = nil
	m.tabOffset = 0
}

func (m *Model) waitForScroll() tea.Cmd {
	ch := m.scrollCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return tabScrollMsg(<-ch)
	}
}

func (m *Model) startRefresh() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	slugs := []string{m.opts.Section}

	progressChan := m.progressChan
	go func() {
		result, err := m.engine.Run(m.ctx, slugs, progressChan)
		m.result = result
		m.err = err
		close(progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return refreshDoneMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return refreshDoneMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderBrowse() string {
	if m.rail == nil {
		return styles.help.Render("Loading section...")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.nextTab, m.keys.refresh, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.renderTabBar(), m.itemList.View(), helpView)
}

func (m *Model) renderTabBar() string {
	bar := ""
	for _, tab := range m.rail.Tabs() {
		label := " " + tab + " "
		if tab == m.rail.ActiveTab() {
			bar += styles.tabActive.Render(label)
		} else {
			bar += styles.tab.Render(label)
		}
	}
	if m.width > 0 && lipgloss.Width(bar) > m.width {
		return m.renderTabMarquee()
	}
	return bar
}

// renderTabMarquee rotates a plain-text tab strip by the scroller offset
// when the styled bar does not fit the terminal width.
func (m *Model) renderTabMarquee() string {
	runes := []rune(m.marqueeText())
	if len(runes) == 0 {
		return ""
	}
	offset := m.tabOffset % len(runes)
	rotated := append(append([]rune{}, runes[offset:]...), runes[:offset]...)
	if m.width > 0 && len(rotated) > m.width {
		rotated = rotated[:m.width]
	}
	return string(rotated)
}

func (m *Model) marqueeText() string {
	tabs := m.rail.Tabs()
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab == m.rail.ActiveTab() {
			parts = append(parts, "["+tab+"]")
		} else {
			parts = append(parts, tab)
		}
	}
	return strings.Join(parts, "   ") + "   "
}

func (m *Model) renderViewer() string {
	session := m.viewer.Session()
	if session == nil {
		return styles.err.Render("No active session\n\nPress esc to go back")
	}

	current, ok := m.viewer.Current()
	if !ok {
		return styles.err.Render("No active session\n\nPress esc to go back")
	}

	title := styles.title.Render(current.Title)
	position := fmt.Sprintf("%d / %d", m.viewer.Index()+1, len(session.Items))

	var body string
	switch m.viewer.State() {
	case viewer.Loading:
		body = "Loading..."
	case viewer.Failed:
		body = styles.err.Render("Failed to load media")
	case viewer.Ready:
		body = m.rail.Thumbnail(current, m.viewer.Index())
	}

	marker := ""
	if m.viewer.IsFullscreen() {
		marker = styles.warn.Render(" [fullscreen]")
	}

	helpKeys := []key.Binding{m.keys.left, m.keys.right, m.keys.fullscreen, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s\n\n%s", title, position, marker, body, helpView)
}

func (m *Model) renderRefresh() string {
	title := styles.title.Render("Refreshing Section")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchSection:
		phase = fmt.Sprintf("Fetching (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.StoreSection:
		phase = fmt.Sprintf("Caching (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.Summarize:
		phase = "Finishing..."
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}
