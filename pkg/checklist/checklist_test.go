package checklist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSeed(t *testing.T) {
	t.Parallel()
	tasks := Seed()
	require.Len(t, tasks, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(tasks))
	assert.Equal(t, 0, CompletedCount(tasks))
	assert.NoError(t, Validate(tasks))

	// Fresh slice per call
	tasks[0].Completed = true
	assert.False(t, Seed()[0].Completed)
}

func TestValidateDuplicate(t *testing.T) {
	t.Parallel()
	err := Validate([]Task{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = New([]Task{{ID: "x"}, {ID: "x"}})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestToggleOnce(t *testing.T) {
	t.Parallel()
	seed := Seed()
	next := Reduce(seed, Toggle{ID: "1"})

	assert.Equal(t, 1, CompletedCount(next))
	assert.True(t, next[0].Completed)
	assert.Equal(t, seed[1:], next[1:])
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(next))
	assert.False(t, seed[0].Completed, "input must not be modified")
}

func TestToggleTwice(t *testing.T) {
	t.Parallel()
	tasks := Reduce(Reduce(Seed(), Toggle{ID: "2"}), Toggle{ID: "2"})
	assert.Equal(t, 0, CompletedCount(tasks))
	assert.False(t, tasks[1].Completed)
	assert.Equal(t, Seed(), tasks)
}

func TestToggleUnknownID(t *testing.T) {
	t.Parallel()
	seed := Reduce(Seed(), Toggle{ID: "3"})
	next := Reduce(seed, Toggle{ID: "missing"})

	assert.Equal(t, seed, next)
	require.NotEmpty(t, next)
	assert.Same(t, &seed[0], &next[0], "no-op must return the same collection")
}

func TestToggleSequenceParity(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(7, 11))
	candidates := []string{"1", "2", "3", "4", "5", ""}

	for run := 0; run < 50; run++ {
		tasks := Seed()
		toggles := map[string]int{}
		n := r.IntN(40)
		for i := 0; i < n; i++ {
			id := candidates[r.IntN(len(candidates))]
			toggles[id]++
			tasks = Reduce(tasks, Toggle{ID: id})
		}

		want := 0
		for _, task := range Seed() {
			if toggles[task.ID]%2 == 1 {
				want++
			}
		}
		assert.Equal(t, want, CompletedCount(tasks), "run %d", run)
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids(tasks), "order must not change")
		for _, task := range tasks {
			assert.Equal(t, toggles[task.ID]%2 == 1, task.Completed, "task %s", task.ID)
		}
	}
}

func TestChecklist(t *testing.T) {
	t.Parallel()
	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	assert.True(t, c.Toggle("4"))
	assert.Equal(t, 1, c.CompletedCount())
	assert.True(t, c.At(3).Completed)

	assert.False(t, c.Toggle("nope"))
	assert.Equal(t, 1, c.CompletedCount())

	// Tasks returns a copy
	snapshot := c.Tasks()
	snapshot[0].Completed = true
	assert.False(t, c.At(0).Completed)

	assert.True(t, c.Toggle("4"))
	assert.Equal(t, 0, c.CompletedCount())
}
