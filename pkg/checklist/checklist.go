package checklist

// Checklist owns the task collection for one mount of the task screen.
// It is not safe for concurrent use; the UI goroutine owns it.
type Checklist struct {
	tasks []Task
}

// New creates a Checklist seeded with tasks. A nil or empty tasks uses Seed.
func New(tasks []Task) (*Checklist, error) {
	if len(tasks) == 0 {
		tasks = Seed()
	}
	if err := Validate(tasks); err != nil {
		return nil, err
	}
	cp := make([]Task, len(tasks))
	copy(cp, tasks)
	return &Checklist{tasks: cp}, nil
}

// Dispatch replaces the collection with Reduce(current, ev).
// It reports whether the collection changed.
func (c *Checklist) Dispatch(ev Event) bool {
	next := Reduce(c.tasks, ev)
	changed := len(next) > 0 && len(c.tasks) > 0 && &next[0] != &c.tasks[0]
	c.tasks = next
	return changed
}

// Toggle flips the completion flag of the task with id. Unknown ids are ignored.
func (c *Checklist) Toggle(id string) bool {
	return c.Dispatch(Toggle{ID: id})
}

// Tasks returns a copy of the current collection in display order.
func (c *Checklist) Tasks() []Task {
	cp := make([]Task, len(c.tasks))
	copy(cp, c.tasks)
	return cp
}

// At returns the task at display position i.
func (c *Checklist) At(i int) Task {
	return c.tasks[i]
}

// Len returns the number of tasks.
func (c *Checklist) Len() int {
	return len(c.tasks)
}

// CompletedCount scans the current collection.
func (c *Checklist) CompletedCount() int {
	return CompletedCount(c.tasks)
}
