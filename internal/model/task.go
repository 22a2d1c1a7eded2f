package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStatus = errors.New("model: invalid task status")

type Status string

const (
	StatusTodo      Status = "todo"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus accepts either status name, ignoring case and surrounding space.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

type Task struct {
	ID     int
	Title  string
	Status Status
}

func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// Filter is the set of statuses eligible for display. It is only ever
// populated with a single status, but membership is checked as a set.
type Filter []Status

func NewFilter(statuses ...Status) Filter {
	out := make(Filter, 0, len(statuses))
	for _, s := range statuses {
		if !out.Includes(s) {
			out = append(out, s)
		}
	}
	return out
}

func DefaultFilter() Filter {
	return NewFilter(StatusTodo)
}

func (f Filter) Includes(s Status) bool {
	for _, item := range f {
		if item == s {
			return true
		}
	}
	return false
}

// Toggled flips between the two views: a filter holding todo becomes
// {completed}, anything else becomes {todo}.
func (f Filter) Toggled() Filter {
	if f.Includes(StatusTodo) {
		return NewFilter(StatusCompleted)
	}
	return NewFilter(StatusTodo)
}

func (f Filter) String() string {
	parts := make([]string, 0, len(f))
	for _, s := range f {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}
