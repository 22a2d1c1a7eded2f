package store

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/tasks/internal/model"
)

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestAddAssignsTodoAndCountIDs(t *testing.T) {
	s := New()
	for _, title := range []string{"a", "b", "c"} {
		s.Add(title)
	}

	tasks := s.Tasks()
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.ID)
		assert.Equal(t, model.StatusTodo, task.Status)
	}
	assert.Equal(t, []string{"a", "b", "c"}, titles(tasks))
}

func TestAddAcceptsEmptyTitle(t *testing.T) {
	s := New()
	task := s.Add("")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "", task.Title)
	assert.Equal(t, model.StatusTodo, task.Status)
}

func TestSetStatusOnlyTouchesMatchingTask(t *testing.T) {
	s := New()
	s.Add("one")
	s.Add("two")
	s.Add("three")
	before := s.Tasks()

	s.SetStatus(2, model.StatusCompleted)
	after := s.Tasks()

	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, model.StatusCompleted, after[1].Status)
	assert.Equal(t, before[1].Title, after[1].Title)
}

func TestSetStatusUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.Add("one")
	before := s.Tasks()

	s.SetStatus(42, model.StatusCompleted)
	assert.Equal(t, before, s.Tasks())
}

func TestDeleteChangesLengthByPresence(t *testing.T) {
	s := New()
	s.Add("one")
	s.Add("two")

	s.Delete(99)
	assert.Equal(t, 2, s.Len())

	s.Delete(1)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"two"}, titles(s.Tasks()))
}

func TestClearAlwaysEmpties(t *testing.T) {
	s := New()
	s.Clear()
	assert.Equal(t, 0, s.Len())

	s.Add("one")
	s.Add("two")
	s.ToggleView()
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.VisibleTasks())
	assert.True(t, s.Filter().Includes(model.StatusCompleted), "clear must not reset the filter")
}

func TestCountPolicyReusesIDsAfterDelete(t *testing.T) {
	s := New()
	s.Add("first")
	s.Delete(1)
	again := s.Add("second")
	assert.Equal(t, 1, again.ID)

	// Two live tasks can end up sharing an id.
	s = New()
	s.Add("a")
	s.Add("b")
	s.Delete(1)
	dup := s.Add("c")
	assert.Equal(t, 2, dup.ID)

	s.SetStatus(2, model.StatusCompleted)
	for _, task := range s.Tasks() {
		assert.Equal(t, model.StatusCompleted, task.Status, "task %q", task.Title)
	}

	s.Delete(2)
	assert.Equal(t, 0, s.Len())
}

func TestMonotonicPolicyNeverReuses(t *testing.T) {
	s := New(WithIDPolicy(IDPolicyMonotonic))
	s.Add("a")
	s.Add("b")
	s.Delete(1)
	c := s.Add("c")
	assert.Equal(t, 3, c.ID)

	s.Clear()
	d := s.Add("d")
	assert.Equal(t, 4, d.ID)
}

func TestToggleViewIsComplement(t *testing.T) {
	s := New()
	s.ToggleView()
	assert.Equal(t, model.NewFilter(model.StatusCompleted), s.Filter())

	s.ToggleView()
	assert.Equal(t, model.NewFilter(model.StatusTodo), s.Filter())
}

func TestVisibleOnlyMatchingInOrder(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	s.Add("d")
	s.SetStatus(2, model.StatusCompleted)
	s.SetStatus(4, model.StatusCompleted)

	assert.Equal(t, []string{"a", "c"}, titles(s.VisibleTasks()))

	s.ToggleView()
	assert.Equal(t, []string{"b", "d"}, titles(s.VisibleTasks()))
}

func TestVisibleIsRestartableAndLazy(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	seq := s.Visible()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	s.Add("c")
	assert.Len(t, slices.Collect(seq), 3)

	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestExampleScenario(t *testing.T) {
	s := New()

	s.Add("buy milk")
	require.Equal(t, []model.Task{{ID: 1, Title: "buy milk", Status: model.StatusTodo}}, s.Tasks())

	s.Add("pay bills")
	require.Equal(t, []model.Task{
		{ID: 1, Title: "buy milk", Status: model.StatusTodo},
		{ID: 2, Title: "pay bills", Status: model.StatusTodo},
	}, s.Tasks())

	s.SetStatus(1, model.StatusCompleted)
	assert.Equal(t, model.StatusCompleted, s.Tasks()[0].Status)
	assert.Equal(t, model.StatusTodo, s.Tasks()[1].Status)

	assert.Equal(t, []string{"pay bills"}, titles(s.VisibleTasks()))

	s.ToggleView()
	assert.Equal(t, model.NewFilter(model.StatusCompleted), s.Filter())
	assert.Equal(t, []string{"buy milk"}, titles(s.VisibleTasks()))

	s.Delete(1)
	assert.Equal(t, []model.Task{{ID: 2, Title: "pay bills", Status: model.StatusTodo}}, s.Tasks())
	assert.Empty(t, s.VisibleTasks())
}

func TestParseIDPolicy(t *testing.T) {
	p, err := ParseIDPolicy(" Monotonic ")
	require.NoError(t, err)
	assert.Equal(t, IDPolicyMonotonic, p)

	_, err = ParseIDPolicy("uuid")
	assert.Error(t, err)
}

func TestWithFilterCopies(t *testing.T) {
	f := model.NewFilter(model.StatusCompleted)
	s := New(WithFilter(f))
	f[0] = model.StatusTodo
	assert.True(t, s.Filter().Includes(model.StatusCompleted))
}
