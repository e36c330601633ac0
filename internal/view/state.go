// Package view holds the state of a link dashboard. State values are never
// mutated: every event produces a new State through Reduce.
package view

import "github.com/pmurley/link-tracker/internal/analysis"

type State struct {
	Seq         uint64 // sequence number of the latest refresh started
	Loading     bool
	Err         string
	Loaded      bool // a refresh has succeeded at least once
	Report      analysis.Report
	CurrentPage int
}

func Initial() State {
	return State{CurrentPage: 1}
}

// Event is anything Reduce knows how to apply.
type Event interface {
	apply(State) State
}

type RefreshStarted struct {
	Seq uint64
}

type RefreshSucceeded struct {
	Seq    uint64
	Report analysis.Report
}

type RefreshFailed struct {
	Seq uint64
	Err error
}

type PageChanged struct {
	Page int
}

type NextPage struct{}

type PrevPage struct{}

// Reduce applies ev to s and returns the resulting state.
func Reduce(s State, ev Event) State {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}

func (e RefreshStarted) apply(s State) State {
	if e.Seq <= s.Seq {
		return s
	}
	s.Seq = e.Seq
	s.Loading = true
	return s
}

// Results from anything but the latest refresh are dropped.
func (e RefreshSucceeded) apply(s State) State {
	if e.Seq != s.Seq || !s.Loading {
		return s
	}
	s.Loading = false
	s.Err = ""
	s.Loaded = true
	s.Report = e.Report
	s.CurrentPage = 1
	return s
}

func (e RefreshFailed) apply(s State) State {
	if e.Seq != s.Seq || !s.Loading {
		return s
	}
	s.Loading = false
	s.Err = "Failed to load links"
	if e.Err != nil {
		s.Err = e.Err.Error()
	}
	return s
}

func (e PageChanged) apply(s State) State {
	s.CurrentPage = s.Report.ClampPage(e.Page)
	return s
}

func (NextPage) apply(s State) State {
	s.CurrentPage = s.Report.ClampPage(s.CurrentPage + 1)
	return s
}

func (PrevPage) apply(s State) State {
	s.CurrentPage = s.Report.ClampPage(s.CurrentPage - 1)
	return s
}

// ShowContent reports whether the link list and duplicate panel are visible.
func (s State) ShowContent() bool {
	return !s.Loading && s.Err == ""
}

func (s State) PageLinks() []analysis.DecoratedLink {
	return s.Report.Page(s.CurrentPage)
}

func (s State) HasPrev() bool {
	return s.CurrentPage > 1
}

func (s State) HasNext() bool {
	return s.CurrentPage < s.Report.TotalPages()
}
