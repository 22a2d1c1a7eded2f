// Package store holds the in-memory task collection and the active view
// filter for a single task list.
package store

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sandeepkv93/tasks/internal/model"
)

// IDPolicy selects how identifiers are assigned to new tasks.
type IDPolicy string

const (
	// IDPolicyCount assigns len+1. Ids can repeat once tasks are deleted.
	IDPolicyCount IDPolicy = "count"
	// IDPolicyMonotonic assigns from a counter that is never reset.
	IDPolicyMonotonic IDPolicy = "monotonic"
)

func (p IDPolicy) IsValid() bool {
	switch p {
	case IDPolicyCount, IDPolicyMonotonic:
		return true
	default:
		return false
	}
}

func ParseIDPolicy(raw string) (IDPolicy, error) {
	p := IDPolicy(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", fmt.Errorf("store: invalid id policy %q", raw)
	}
	return p, nil
}

type Option func(*Store)

func WithIDPolicy(p IDPolicy) Option {
	return func(s *Store) {
		if p.IsValid() {
			s.policy = p
		}
	}
}

func WithFilter(f model.Filter) Option {
	return func(s *Store) {
		s.filter = slices.Clone(f)
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l.With().Str("component", "store").Logger()
	}
}

// Store is owned by exactly one view. It is not safe for concurrent use.
type Store struct {
	tasks  []model.Task
	filter model.Filter
	policy IDPolicy
	lastID int
	log    zerolog.Logger
}

func New(opts ...Option) *Store {
	s := &Store{
		filter: model.DefaultFilter(),
		policy: IDPolicyCount,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) IDPolicy() IDPolicy { return s.policy }

func (s *Store) nextID() int {
	if s.policy == IDPolicyMonotonic {
		s.lastID++
		return s.lastID
	}
	return len(s.tasks) + 1
}

// Add appends a todo task. Empty titles are accepted as-is.
func (s *Store) Add(title string) model.Task {
	task := model.Task{
		ID:     s.nextID(),
		Title:  title,
		Status: model.StatusTodo,
	}
	s.tasks = append(s.tasks, task)
	s.log.Debug().Int("id", task.ID).Str("title", title).Msg("task added")
	return task
}

// SetStatus updates every task carrying id. Unknown ids are ignored.
func (s *Store) SetStatus(id int, status model.Status) {
	changed := 0
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			changed++
		}
	}
	s.log.Debug().Int("id", id).Str("status", string(status)).Int("changed", changed).Msg("task status set")
}

// Delete removes every task carrying id. Unknown ids are ignored.
func (s *Store) Delete(id int) {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
	s.log.Debug().Int("id", id).Int("removed", before-len(s.tasks)).Msg("task deleted")
}

// Clear drops all tasks. The filter is left alone.
func (s *Store) Clear() {
	n := len(s.tasks)
	s.tasks = nil
	s.log.Debug().Int("removed", n).Msg("tasks cleared")
}

func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Filter() model.Filter {
	return slices.Clone(s.filter)
}

func (s *Store) SetFilter(f model.Filter) {
	s.filter = slices.Clone(f)
	s.log.Debug().Str("filter", s.filter.String()).Msg("filter set")
}

// ToggleView flips the filter between {todo} and {completed}.
func (s *Store) ToggleView() {
	s.filter = s.filter.Toggled()
	s.log.Debug().Str("filter", s.filter.String()).Msg("view toggled")
}

// Visible yields the tasks matching the filter in insertion order. The
// sequence reads the store when iterated, so it can be ranged again after
// a mutation to observe the new state.
func (s *Store) Visible() iter.Seq[model.Task] {
	return func(yield func(model.Task) bool) {
		for _, task := range s.tasks {
			if !s.filter.Includes(task.Status) {
				continue
			}
			if !yield(task) {
				return
			}
		}
	}
}

func (s *Store) VisibleTasks() []model.Task {
	return slices.Collect(s.Visible())
}
