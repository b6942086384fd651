package tui

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/csheth/teletext/internal/nav"
	"github.com/csheth/teletext/internal/teletext"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	m := New(Config{
		BaseURL: "http://127.0.0.1:0",
		Logger:  zerolog.Nop(),
	})
	return m.(*model)
}

var ansiEscapeCodes = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(text string) string {
	return ansiEscapeCodes.ReplaceAllString(text, "")
}

func TestNavResultErrorKeepsPreviousFrame(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView
	m.loading = true
	m.frame = &teletext.Frame{Header: "previous page"}

	_, cmd := m.Update(navResultMsg{
		command: nav.NextPage{},
		state:   nav.NewState(100),
		err:     errors.New("connection refused"),
	})
	if cmd != nil {
		t.Fatalf("error result should not schedule a command, got %T", cmd)
	}
	if m.loading {
		t.Fatal("loading flag not cleared after failed navigation")
	}
	if m.frame == nil || m.frame.Header != "previous page" {
		t.Fatalf("previous frame was replaced: %+v", m.frame)
	}
}

func TestNavResultAppliesStateAndFrame(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView
	m.loading = true

	next := nav.NewState(100)
	next.Page, next.SubPage = 101, 2
	_, _ = m.Update(navResultMsg{
		command: nav.NextSubPage{},
		state:   next,
		frame:   &teletext.Frame{Header: "new page"},
	})
	if m.state.Page != 101 || m.state.SubPage != 2 {
		t.Fatalf("state = (%d, %d), want (101, 2)", m.state.Page, m.state.SubPage)
	}
	if m.frame == nil || m.frame.Header != "new page" {
		t.Fatalf("frame not applied: %+v", m.frame)
	}
}

func TestNavigationKeysIgnoredWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView
	m.loading = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil {
		t.Fatalf("key while loading scheduled a command: %T", cmd)
	}
}

func TestQuitKeyAlwaysWorks(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView
	m.loading = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc did not produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("esc command = %T, want tea.QuitMsg", cmd())
	}
}

func TestClockTickOnlyRefreshesClock(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView
	before := m.state

	at := time.Date(2020, 8, 24, 20, 15, 0, 0, time.UTC)
	_, cmd := m.Update(clockTickMsg(at))
	if !m.now.Equal(at) {
		t.Fatalf("clock not updated, now = %v", m.now)
	}
	if cmd == nil {
		t.Fatal("clock tick did not reschedule itself")
	}
	if m.state != before {
		t.Fatal("clock tick touched navigation state")
	}
	if m.loading {
		t.Fatal("clock tick started a load")
	}
}

func TestNavigationKeyStartsSingleLoad(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("navigation key did not schedule a command")
	}
	if !m.loading {
		t.Fatal("loading flag not set for in-flight navigation")
	}
}

func TestHeaderRowSplicesClock(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView
	m.frame = &teletext.Frame{Header: "NDR Text 100"}
	m.now = time.Date(2020, 8, 24, 20, 15, 42, 0, time.UTC)

	row := stripANSI(m.headerRow())
	if utf8.RuneCountInString(row) != m.config.Width {
		t.Fatalf("header row width = %d, want %d", utf8.RuneCountInString(row), m.config.Width)
	}
	if !strings.HasPrefix(row, "NDR Text 100") {
		t.Fatalf("header text missing: %q", row)
	}
	if !strings.HasSuffix(row, "24.08. 20:15:42") {
		t.Fatalf("clock missing from header row: %q", row)
	}
}

func TestRenderLinePadsToWidth(t *testing.T) {
	t.Parallel()

	line := teletext.Line{
		{Text: "abc", Tags: []string{"f1"}},
		{Text: "def", Tags: nil},
	}
	got := stripANSI(renderLine(line, 10))
	if utf8.RuneCountInString(got) != 10 {
		t.Fatalf("rendered width = %d, want 10: %q", utf8.RuneCountInString(got), got)
	}
	if !strings.HasPrefix(got, "abcdef") {
		t.Fatalf("run text mangled: %q", got)
	}
	if !strings.HasSuffix(got, "    ") {
		t.Fatalf("missing neutral padding tail: %q", got)
	}
}

func TestPendingDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pending []int
		want    string
	}{
		{nil, "···"},
		{[]int{1}, "1··"},
		{[]int{1, 0}, "10·"},
	}
	for _, tt := range tests {
		if got := pendingDisplay(tt.pending); got != tt.want {
			t.Fatalf("pendingDisplay(%v) = %q, want %q", tt.pending, got, tt.want)
		}
	}
}

func TestViewWithoutFrameShowsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	m.stage = stageView

	view := stripANSI(m.View())
	if !strings.Contains(view, "No page loaded") {
		t.Fatalf("placeholder missing from view: %q", view)
	}
}
