// Package checklist holds the daily route checklist: a small, ordered set of
// tasks whose completion flag is flipped by the user.
package checklist

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by Validate when two tasks share an ID.
var ErrDuplicateID = errors.New("duplicate task id")

// Task is a single checklist item.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Completed bool   `json:"completed"`
}

// Seed returns the fixed list of tasks the checklist starts with.
// Each call returns a fresh slice.
func Seed() []Task {
	return []Task{
		{
			ID:       "1",
			Title:    "Перевір фургон",
			Subtitle: "Скануй QR з інвентаризацією перед стартом.",
		},
		{
			ID:       "2",
			Title:    "Забір зерна",
			Subtitle: "Змоделюй чек-ін у постачальника (локальний state).",
		},
		{
			ID:       "3",
			Title:    "Маршрут NextDrop",
			Subtitle: "Створи геоточки та дотримуйся роботи з картами.",
		},
		{
			ID:       "4",
			Title:    "Чек-ліст видачі",
			Subtitle: "Залиш підтвердження підпису клієнта (Gesture Handler).",
		},
	}
}

// Validate checks that every task ID is unique.
func Validate(tasks []Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("validate tasks: %w: %q", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// CompletedCount returns the number of completed tasks.
func CompletedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
