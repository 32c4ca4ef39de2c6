package task

import "time"

// Task is a single trackable item.
type Task struct {
	ID          uint64    `yaml:"id"`
	Description string    `yaml:"description"`
	Completed   bool      `yaml:"completed"`
	CreatedAt   time.Time `yaml:"created_at"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}

// New creates an incomplete task with the given id and description.
func New(id uint64, description string) Task {
	now := time.Now()
	return Task{
		ID:          id,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
