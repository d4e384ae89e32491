package tui

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"paleochart/internal/chart"
	"paleochart/internal/proxy"
)

func sampleRecords() []proxy.Record {
	return []proxy.Record{
		{YearsBefore2023: 0, CO2: 300, CH4: 700, TempAnomaly: -0.2},
		{YearsBefore2023: 3000, CO2: 999, CH4: 9999, TempAnomaly: 9},
		{YearsBefore2023: 50, CO2: 290, CH4: 680, TempAnomaly: 0.1},
		{YearsBefore2023: 100, CO2: 280, CH4: 650, TempAnomaly: -0.5},
	}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a 100x30 viewer showing sampleRecords.
func loaded(t *testing.T) Model {
	t.Helper()
	return send(t, New(DefaultOptions(), nil, nil),
		tea.WindowSizeMsg{Width: 100, Height: 30},
		recordsMsg{source: "sample.json", recs: sampleRecords()},
	)
}

func TestRecordsMsgBuildsChart(t *testing.T) {
	m := loaded(t)
	if m.renderer == nil {
		t.Fatal("no chart after records")
	}
	if len(m.records) != 3 {
		t.Fatalf("kept %d records, want 3", len(m.records))
	}
	if m.canvas != (plot{x: gutterWidth, y: headerHeight, w: 91, h: 24}) {
		t.Fatalf("canvas = %+v", m.canvas)
	}
	if !strings.Contains(m.status, "records=3 of 4") {
		t.Fatalf("status = %q", m.status)
	}
	v := m.View()
	for _, want := range []string{chart.Title, chart.CO2.Label, chart.CH4.Label, "300"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRecordsBeforeWindowSize(t *testing.T) {
	m := send(t, New(DefaultOptions(), nil, nil), recordsMsg{source: "x", recs: sampleRecords()})
	if m.renderer != nil {
		t.Fatal("built a chart without a window size")
	}
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.renderer == nil {
		t.Fatal("no chart after resize")
	}
}

func TestLoadErrorKeepsChart(t *testing.T) {
	m := loaded(t)
	m = send(t, m, recordsMsg{source: "http://x", err: errors.New("boom")})
	if m.renderer == nil || len(m.records) != 3 {
		t.Fatal("error dropped the previous chart")
	}
	if !m.statusErr || m.status != "load error: boom" {
		t.Fatalf("status = %q err=%v", m.status, m.statusErr)
	}
}

func TestWheelZoomKeepsPointerYear(t *testing.T) {
	m := loaded(t)
	const cx, cy = 40, 10
	px := m.canvas.micro(cx, cy).X
	before := m.frameX().Invert(px)

	m = send(t, m, tea.MouseMsg{X: cx, Y: cy, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if k := m.renderer.Transform().K; k != wheelFactor {
		t.Fatalf("K = %v, want %v", k, wheelFactor)
	}
	if after := m.frameX().Invert(px); math.Abs(after-before) > 1e-9 {
		t.Fatalf("year under pointer moved: %v -> %v", before, after)
	}

	for i := 0; i < 30; i++ {
		m = send(t, m, tea.MouseMsg{X: cx, Y: cy, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	}
	if k := m.renderer.Transform().K; k != 10 {
		t.Fatalf("K = %v, want clamp at 10", k)
	}
}

func TestHoverFallsBackToNextSeries(t *testing.T) {
	m := loaded(t)
	m.hovering = true
	// co2 far above its domain puts that point outside the canvas
	m.hoverRec = proxy.Record{YearsBefore2023: 50, CO2: 10000, CH4: 675, TempAnomaly: 0}
	pt, ok := m.hoverPoint()
	if !ok {
		t.Fatal("no hover point")
	}
	want := m.renderer.Chart().Generator(1, m.frameX())(m.hoverRec)
	if pt != want {
		t.Fatalf("hover point = %+v, want the ch4 point %+v", pt, want)
	}

	m.show[1] = false
	m.hoverRec.TempAnomaly = 5
	if _, ok := m.hoverPoint(); ok {
		t.Fatal("hover point found with every visible series off canvas")
	}
}

func TestWheelOutsideCanvasIgnored(t *testing.T) {
	m := loaded(t)
	m = send(t, m, tea.MouseMsg{X: 2, Y: 10, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.renderer.Transform() != chart.Identity {
		t.Fatalf("transform = %+v", m.renderer.Transform())
	}
}

func TestDragPans(t *testing.T) {
	m := send(t, loaded(t), keyMsg("+"))
	x0 := m.renderer.Transform().X
	m = send(t, m,
		tea.MouseMsg{X: 50, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		tea.MouseMsg{X: 40, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
		tea.MouseMsg{X: 40, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
	)
	if got := m.renderer.Transform().X; math.Abs(got-(x0-20)) > 1e-9 {
		t.Fatalf("X = %v, want %v", got, x0-20)
	}
	if m.dragging {
		t.Fatal("still dragging after release")
	}
	// motion without a button held only hovers
	m = send(t, m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionMotion})
	if got := m.renderer.Transform().X; math.Abs(got-(x0-20)) > 1e-9 {
		t.Fatalf("hover moved the view: %v", got)
	}
	if !m.hovering {
		t.Fatal("no hover record")
	}
}

func TestPanIsClamped(t *testing.T) {
	m := loaded(t)
	m = send(t, m, keyMsg("left"))
	if m.renderer.Transform().X != 0 {
		t.Fatalf("panned past the start at K=1: %+v", m.renderer.Transform())
	}
}

func TestResetKey(t *testing.T) {
	m := send(t, loaded(t), keyMsg("+"), keyMsg("+"), keyMsg("0"))
	if m.renderer.Transform() != chart.Identity {
		t.Fatalf("transform = %+v", m.renderer.Transform())
	}
}

func TestResizeKeepsZoom(t *testing.T) {
	m := send(t, loaded(t), keyMsg("+"))
	m = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	if k := m.renderer.Transform().K; k != keyFactor {
		t.Fatalf("K = %v after resize", k)
	}
	if m.canvas.w != 131 {
		t.Fatalf("canvas width = %d", m.canvas.w)
	}
}

func TestSeriesToggle(t *testing.T) {
	m := send(t, loaded(t), keyMsg("2"))
	if m.show != [3]bool{true, false, true} {
		t.Fatalf("show = %v", m.show)
	}
	if v := m.View(); !strings.Contains(v, "□ "+chart.CH4.Label) {
		t.Fatal("legend does not mark CH4 hidden")
	}
}

func TestPasteMode(t *testing.T) {
	m := send(t, loaded(t), keyMsg("p"))
	if !m.pasteMode {
		t.Fatal("not in paste mode")
	}
	m.ta.SetValue(`[{"years_before_2023": 5, "co2_ppmv": 280, "ch4_ppb": "600", "temp_anomaly": 0.5}]`)
	m = send(t, m, keyMsg("enter"))
	if m.pasteMode || len(m.records) != 1 {
		t.Fatalf("paste not applied: mode=%v records=%d", m.pasteMode, len(m.records))
	}
	if m.records[0].CH4 != 600 {
		t.Fatalf("record = %+v", m.records[0])
	}

	m = send(t, m, keyMsg("p"))
	m.ta.SetValue(`{"not": "an array"}`)
	m = send(t, m, keyMsg("enter"))
	if !m.pasteMode || !m.statusErr {
		t.Fatalf("bad paste accepted: mode=%v status=%q", m.pasteMode, m.status)
	}
}

func TestRecordsTable(t *testing.T) {
	m := send(t, loaded(t), keyMsg("a"))
	if !m.showRecords || len(m.tbl.Rows()) != 3 {
		t.Fatalf("records table: show=%v rows=%d", m.showRecords, len(m.tbl.Rows()))
	}
	if row := m.tbl.Rows()[1]; row[1] != "50" || row[2] != "290" {
		t.Fatalf("row = %v", row)
	}
	m = send(t, m, keyMsg("esc"))
	if m.showRecords {
		t.Fatal("esc did not close the table")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := loaded(t).Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestExportKey(t *testing.T) {
	m := loaded(t)
	m.opts.ExportDir = t.TempDir()
	m = send(t, m, keyMsg("+"))
	next, cmd := m.Update(keyMsg("e"))
	if cmd == nil {
		t.Fatal("no export command")
	}
	msg, ok := cmd().(exportedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("export = %+v", msg)
	}
	b, err := os.ReadFile(msg.path)
	if err != nil || !strings.Contains(string(b), "<svg") {
		t.Fatalf("export file: %v", err)
	}
	m = send(t, next.(Model), msg)
	if !strings.HasPrefix(m.status, "exported: ") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestFetchCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"years_before_2023": 1, "co2_ppmv": 280, "ch4_ppb": 700, "temp_anomaly": 0}]`))
	}))
	defer srv.Close()

	f := proxy.NewFetcher(nil, 0)
	msg := fetchCmd(f, srv.URL)().(recordsMsg)
	if msg.err != nil || len(msg.recs) != 1 || msg.source != srv.URL {
		t.Fatalf("fetch = %+v", msg)
	}
	if msg := fetchCmd(nil, srv.URL)().(recordsMsg); !errors.Is(msg.err, errNoFetcher) {
		t.Fatalf("nil fetcher err = %v", msg.err)
	}
}

func TestInitWithoutSource(t *testing.T) {
	if cmd := New(DefaultOptions(), nil, nil).Init(); cmd != nil {
		t.Fatal("Init without a source should not fetch")
	}
	o := DefaultOptions()
	o.URL = "http://example.invalid"
	m := New(o, nil, proxy.NewFetcher(nil, 0))
	if !m.loading || m.Init() == nil {
		t.Fatal("Init with a url should fetch")
	}
}
