package tui

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"paleochart/internal/chart"
	"paleochart/internal/proxy"
)

// Options configure the viewer.
type Options struct {
	// URL is fetched at start and on refetch.
	URL string
	// Path, when set, is loaded instead of URL at start.
	Path   string
	Filter proxy.FilterOptions
	// Canvas is the full-size layout used for exports. Its overscan is
	// rescaled to the terminal canvas.
	Canvas  chart.Layout
	MinZoom float64
	MaxZoom float64
	// ExportDir receives the files written by the export key.
	ExportDir string
}

func DefaultOptions() Options {
	return Options{
		Filter:  proxy.DefaultFilter(),
		Canvas:  chart.DefaultLayout(),
		MinZoom: 1,
		MaxZoom: 10,
	}
}

type Model struct {
	opts    Options
	logger  *slog.Logger
	fetcher *proxy.Fetcher

	width  int
	height int

	showSidebar bool
	helpVisible bool

	status    string
	statusErr bool
	loading   bool
	source    string

	keys keyMap
	help help.Model
	spin spinner.Model

	// File explorer
	cwd   string
	l     list.Model
	items []list.Item

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// records table
	showRecords bool
	tbl         table.Model

	// Data and the renderer built for the current canvas
	records  []proxy.Record
	renderer *chart.Renderer
	scene    *chart.Scene
	canvas   plot

	show [3]bool

	// hover state
	hovering bool
	hoverRec proxy.Record

	// drag state
	dragging bool
	dragX    int
}

func New(opts Options, logger *slog.Logger, fetcher *proxy.Fetcher) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		opts:        opts,
		logger:      logger,
		fetcher:     fetcher,
		helpVisible: true,
		status:      "paleochart ready",
		keys:        newKeyMap(),
		help:        help.New(),
		show:        [3]bool{true, true, true},
		loading:     opts.Path != "" || opts.URL != "",
	}
	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = titleStyle
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a JSON array of records here. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(recordColumns()))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.loadSource())
}

// loadSource returns the command that reads the startup dataset.
func (m Model) loadSource() tea.Cmd {
	if m.opts.Path != "" {
		return loadCmd(m.opts.Path)
	}
	return fetchCmd(m.fetcher, m.opts.URL)
}
