package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"paleochart/internal/export"
	"paleochart/internal/proxy"
)

var errNoFetcher = errors.New("no fetcher configured")

// recordsMsg carries a dataset read from a URL, a file or the paste buffer.
type recordsMsg struct {
	source string
	recs   []proxy.Record
	err    error
}

type exportedMsg struct {
	path string
	err  error
}

func fetchCmd(f *proxy.Fetcher, url string) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return recordsMsg{source: url, err: errNoFetcher}
		}
		recs, err := f.Fetch(context.Background(), url)
		return recordsMsg{source: url, recs: recs, err: err}
	}
}

func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		recs, err := proxy.LoadFile(path)
		return recordsMsg{source: path, recs: recs, err: err}
	}
}

func exportCmd(path string, recs []proxy.Record, o export.Options) tea.Cmd {
	return func() tea.Msg {
		return exportedMsg{path: path, err: export.WriteFile(path, recs, o)}
	}
}
