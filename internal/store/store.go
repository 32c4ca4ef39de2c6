package store

import (
	"strings"
	"time"

	"github.com/Ce11an/tasg/internal/task"
)

// Store is the in-memory task list plus the next-id counter.
type Store struct {
	Version int         `yaml:"version"`
	NextID  uint64      `yaml:"next_id"`
	Tasks   []task.Task `yaml:"tasks"`
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Version: 1,
		NextID:  1,
		Tasks:   []task.Task{},
	}
}

// Add appends a new incomplete task and returns it.
func (s *Store) Add(description string) (task.Task, error) {
	if strings.TrimSpace(description) == "" {
		return task.Task{}, ErrEmptyDescription
	}

	t := task.New(s.NextID, description)
	s.NextID++
	s.Tasks = append(s.Tasks, t)
	return t, nil
}

// Find returns the task with the given id.
func (s *Store) Find(id uint64) (*task.Task, error) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Complete marks a task as completed. Completing an already-completed
// task is not an error.
func (s *Store) Complete(id uint64) error {
	t, err := s.Find(id)
	if err != nil {
		return err
	}
	t.Completed = true
	t.UpdatedAt = time.Now()
	return nil
}

// Edit replaces a task's description.
func (s *Store) Edit(id uint64, description string) error {
	t, err := s.Find(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	t.Description = description
	t.UpdatedAt = time.Now()
	return nil
}

// Delete removes a task. Surviving tasks keep their ids and order.
func (s *Store) Delete(id uint64) error {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// List returns tasks in insertion order. When all is false, completed
// tasks are filtered out.
func (s *Store) List(all bool) []task.Task {
	if all {
		return s.Tasks
	}

	var result []task.Task
	for _, t := range s.Tasks {
		if !t.Completed {
			result = append(result, t)
		}
	}
	return result
}

// Nuke clears every task and resets the id counter. The store refuses
// to act unless the caller passes confirmed=true; the interactive
// prompt lives in the CLI layer, never here.
func (s *Store) Nuke(confirmed bool) {
	if !confirmed {
		return
	}
	s.Tasks = []task.Task{}
	s.NextID = 1
}

// Stats returns task counts for display.
func (s *Store) Stats() (total, completed int) {
	for _, t := range s.Tasks {
		total++
		if t.Completed {
			completed++
		}
	}
	return
}
