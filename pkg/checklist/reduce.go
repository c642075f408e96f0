package checklist

// Event is a user action applied to the task collection.
type Event interface {
	isEvent()
}

// Toggle flips the completion flag of the task with ID.
type Toggle struct {
	ID string
}

func (Toggle) isEvent() {}

// Reduce applies ev to tasks and returns the resulting collection.
// tasks is never modified. When ev changes nothing (unknown ID or event type)
// the input slice itself is returned.
func Reduce(tasks []Task, ev Event) []Task {
	switch ev := ev.(type) {
	case Toggle:
		return toggle(tasks, ev.ID)
	default:
		return tasks
	}
}

func toggle(tasks []Task, id string) []Task {
	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return tasks
	}

	next := make([]Task, len(tasks))
	copy(next, tasks)
	next[idx].Completed = !next[idx].Completed
	return next
}
