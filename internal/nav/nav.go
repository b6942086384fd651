// Package nav holds the navigation state machine of the teletext
// viewer: current page and sub-page, the visit history, and the
// multi-digit page number accumulator. The machine is driven by
// discrete commands and is independent of terminal I/O.
package nav

import (
	"context"

	"github.com/csheth/teletext/internal/teletext"
)

// Position is one visited (page, sub-page) pair.
type Position struct {
	Page    int
	SubPage int
}

// State is the complete navigation state. It is owned by the command
// loop and mutated only through Step.
type State struct {
	Page    int
	SubPage int
	Pending []int
	History []Position
}

// NewState returns the state positioned on the start page.
func NewState(startPage int) *State {
	return &State{Page: startPage, SubPage: 1}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	return &State{
		Page:    s.Page,
		SubPage: s.SubPage,
		Pending: append([]int(nil), s.Pending...),
		History: append([]Position(nil), s.History...),
	}
}

// Directory is the page index consulted to validate navigation
// targets.
type Directory interface {
	IsValid(page int) bool
	SubPageCount(page int) (int, error)
}

// Loader resolves a validated (page, sub-page) pair into a renderable
// frame. It runs the whole fetch-parse-wrap pipeline synchronously.
type Loader interface {
	Load(ctx context.Context, page, subPage int) (*teletext.Frame, error)
}

// Config carries the collaborators of the state machine.
type Config struct {
	StartPage int
	Index     Directory
	Loader    Loader
}

// Command is a navigation command. The set is closed; Step switches
// over it exhaustively.
type Command interface{ isCommand() }

// Digit feeds one digit into the page number accumulator. The third
// digit completes a page number and navigates to it.
type Digit struct{ Value int }

// GoToPage navigates to an explicit page, optionally to a specific
// sub-page. A sub-page of 0 means the first one.
type GoToPage struct {
	Page    int
	SubPage int
}

// PrevPage navigates to the preceding page.
type PrevPage struct{}

// NextPage navigates to the following page.
type NextPage struct{}

// PrevSubPage steps back one sub-page, or to the preceding page when
// already on the first sub-page.
type PrevSubPage struct{}

// NextSubPage advances one sub-page, or to the following page when
// already on the last sub-page.
type NextSubPage struct{}

// Back replays the most recent history entry without recording a new
// one. With empty history it is a no-op.
type Back struct{}

func (Digit) isCommand()       {}
func (GoToPage) isCommand()    {}
func (PrevPage) isCommand()    {}
func (NextPage) isCommand()    {}
func (PrevSubPage) isCommand() {}
func (NextSubPage) isCommand() {}
func (Back) isCommand()        {}

// Step applies one command to the state and, when the command completes
// a navigation, loads the target frame. A nil frame with a nil error
// means the command needed no load (an incomplete digit entry, or Back
// with empty history). On a load failure the state, including the
// history, is rolled back to its pre-command value and the error is
// returned for diagnostics; the previous frame stays current.
func Step(ctx context.Context, s *State, cfg Config, cmd Command) (*teletext.Frame, error) {
	switch c := cmd.(type) {
	case Digit:
		s.Pending = append(s.Pending, c.Value)
		if len(s.Pending) < 3 {
			return nil, nil
		}
		page := s.Pending[0]*100 + s.Pending[1]*10 + s.Pending[2]
		s.Pending = nil
		return navigate(ctx, s, cfg, page, 0, true)
	case GoToPage:
		s.Pending = nil
		return navigate(ctx, s, cfg, c.Page, c.SubPage, true)
	case PrevPage:
		s.Pending = nil
		return navigate(ctx, s, cfg, s.Page-1, 0, true)
	case NextPage:
		s.Pending = nil
		return navigate(ctx, s, cfg, s.Page+1, 0, true)
	case PrevSubPage:
		s.Pending = nil
		if s.SubPage > 1 {
			return navigate(ctx, s, cfg, s.Page, s.SubPage-1, true)
		}
		return navigate(ctx, s, cfg, s.Page-1, 0, true)
	case NextSubPage:
		s.Pending = nil
		if count, err := cfg.Index.SubPageCount(s.Page); err == nil && s.SubPage < count {
			return navigate(ctx, s, cfg, s.Page, s.SubPage+1, true)
		}
		return navigate(ctx, s, cfg, s.Page+1, 0, true)
	case Back:
		s.Pending = nil
		if len(s.History) == 0 {
			return nil, nil
		}
		target := s.History[len(s.History)-1]
		s.History = s.History[:len(s.History)-1]
		frame, err := navigate(ctx, s, cfg, target.Page, target.SubPage, false)
		if err != nil {
			s.History = append(s.History, target)
		}
		return frame, err
	}
	return nil, nil
}

// navigate resolves the requested target against the index, loads it,
// and records the pre-transition position unless this is a history
// replay. An unknown page falls back to the start page with sub-page
// 1; a requested sub-page outside 1..count falls back to 1.
func navigate(ctx context.Context, s *State, cfg Config, page, subPage int, push bool) (*teletext.Frame, error) {
	prev := Position{Page: s.Page, SubPage: s.SubPage}
	if push {
		s.History = append(s.History, prev)
	}

	if cfg.Index.IsValid(page) {
		s.Page = page
		s.SubPage = 1
		if count, err := cfg.Index.SubPageCount(page); err == nil && subPage >= 1 && subPage <= count {
			s.SubPage = subPage
		}
	} else {
		s.Page = cfg.StartPage
		s.SubPage = 1
	}

	frame, err := cfg.Loader.Load(ctx, s.Page, s.SubPage)
	if err != nil {
		s.Page, s.SubPage = prev.Page, prev.SubPage
		if push {
			s.History = s.History[:len(s.History)-1]
		}
		return nil, err
	}
	return frame, nil
}
