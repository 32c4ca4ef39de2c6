package store

import (
	"errors"
	"testing"
)

func TestNewStore(t *testing.T) {
	s := New()
	if s.Version != 1 {
		t.Errorf("Expected version 1, got %d", s.Version)
	}
	if s.NextID != 1 {
		t.Errorf("Expected NextID 1, got %d", s.NextID)
	}
	if len(s.Tasks) != 0 {
		t.Errorf("Expected empty tasks, got %d", len(s.Tasks))
	}
}

func TestAdd(t *testing.T) {
	s := New()

	task, err := s.Add("Write README")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("Expected id 1, got %d", task.ID)
	}
	if task.Completed {
		t.Error("New task should not be completed")
	}
	if task.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
	if s.NextID != 2 {
		t.Errorf("Expected NextID 2 after add, got %d", s.NextID)
	}
}

func TestAddRejectsEmptyDescription(t *testing.T) {
	s := New()

	for _, desc := range []string{"", "   ", "\t\n"} {
		if _, err := s.Add(desc); !errors.Is(err, ErrEmptyDescription) {
			t.Errorf("Add(%q): expected ErrEmptyDescription, got %v", desc, err)
		}
	}
	if len(s.Tasks) != 0 {
		t.Errorf("Expected no tasks after rejected adds, got %d", len(s.Tasks))
	}
	if s.NextID != 1 {
		t.Errorf("Expected counter unchanged, got %d", s.NextID)
	}
}

func TestIDsNeverReused(t *testing.T) {
	s := New()

	s.Add("first")
	s.Add("second")
	if err := s.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	task, err := s.Add("third")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID != 3 {
		t.Errorf("Expected id 3 after deleting id 2, got %d", task.ID)
	}

	// IDs stay strictly increasing and unique across the whole history.
	seen := map[uint64]bool{}
	var last uint64
	for _, tk := range s.Tasks {
		if seen[tk.ID] {
			t.Errorf("Duplicate id %d", tk.ID)
		}
		seen[tk.ID] = true
		if tk.ID <= last {
			t.Errorf("Ids not increasing: %d after %d", tk.ID, last)
		}
		last = tk.ID
	}
}

func TestFind(t *testing.T) {
	s := New()
	s.Add("Task 1")
	s.Add("Task 2")

	task, err := s.Find(2)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if task.Description != "Task 2" {
		t.Errorf("Expected 'Task 2', got %q", task.Description)
	}

	_, err = s.Find(99)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.ID != 99 {
		t.Errorf("Expected NotFoundError for id 99, got %d", nf.ID)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	s := New()
	s.Add("Task 1")

	if err := s.Complete(1); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !s.Tasks[0].Completed {
		t.Error("Expected task to be completed")
	}

	// Completing again is not an error and changes nothing.
	if err := s.Complete(1); err != nil {
		t.Fatalf("Second Complete failed: %v", err)
	}
	if !s.Tasks[0].Completed {
		t.Error("Expected task to stay completed")
	}
}

func TestCompleteNotFound(t *testing.T) {
	s := New()

	err := s.Complete(1)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestEdit(t *testing.T) {
	s := New()
	s.Add("Original task")

	if err := s.Edit(1, "Edited task"); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if s.Tasks[0].Description != "Edited task" {
		t.Errorf("Expected 'Edited task', got %q", s.Tasks[0].Description)
	}
}

func TestEditRejectsEmptyDescription(t *testing.T) {
	s := New()
	s.Add("Original task")

	if err := s.Edit(1, "  "); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("Expected ErrEmptyDescription, got %v", err)
	}
	if s.Tasks[0].Description != "Original task" {
		t.Errorf("Description should be unchanged, got %q", s.Tasks[0].Description)
	}
}

func TestEditNotFound(t *testing.T) {
	s := New()

	err := s.Edit(1, "New description")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestDeleteThenFindFails(t *testing.T) {
	s := New()
	s.Add("Task 1")
	s.Add("Task 2")
	s.Add("Task 3")

	if err := s.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(s.Tasks) != 2 {
		t.Errorf("Expected 2 tasks after delete, got %d", len(s.Tasks))
	}

	var nf *NotFoundError
	if _, err := s.Find(2); !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError after delete, got %v", err)
	}

	// Survivors keep their ids and order.
	if s.Tasks[0].ID != 1 || s.Tasks[1].ID != 3 {
		t.Errorf("Expected surviving ids [1 3], got [%d %d]", s.Tasks[0].ID, s.Tasks[1].ID)
	}
}

func TestDeleteNotFound(t *testing.T) {
	s := New()

	err := s.Delete(1)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestListFiltersCompleted(t *testing.T) {
	s := New()
	s.Add("Task 1")
	s.Add("Task 2")
	s.Add("Task 3")
	s.Complete(2)

	all := s.List(true)
	if len(all) != 3 {
		t.Fatalf("Expected 3 tasks with all=true, got %d", len(all))
	}

	pending := s.List(false)
	if len(pending) != 2 {
		t.Fatalf("Expected 2 tasks with all=false, got %d", len(pending))
	}

	// The filtered list is a subset of the full list, same relative order.
	if pending[0].ID != 1 || pending[1].ID != 3 {
		t.Errorf("Expected pending ids [1 3], got [%d %d]", pending[0].ID, pending[1].ID)
	}
	for _, tk := range pending {
		if tk.Completed {
			t.Errorf("Task %d should not be completed", tk.ID)
		}
	}
}

func TestNukeRequiresConfirmation(t *testing.T) {
	s := New()
	s.Add("Task 1")
	s.Add("Task 2")

	s.Nuke(false)
	if len(s.Tasks) != 2 {
		t.Error("Unconfirmed nuke must not touch the store")
	}
	if s.NextID != 3 {
		t.Errorf("Unconfirmed nuke must not reset the counter, got %d", s.NextID)
	}

	s.Nuke(true)
	if len(s.Tasks) != 0 {
		t.Errorf("Expected empty store after nuke, got %d tasks", len(s.Tasks))
	}
	if s.NextID != 1 {
		t.Errorf("Expected counter reset to 1, got %d", s.NextID)
	}

	// The next add starts over at id 1.
	task, err := s.Add("fresh start")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("Expected id 1 after nuke, got %d", task.ID)
	}
}

func TestStats(t *testing.T) {
	s := New()
	s.Add("Task 1")
	s.Add("Task 2")
	s.Add("Task 3")
	s.Complete(1)
	s.Complete(3)

	total, completed := s.Stats()
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if completed != 2 {
		t.Errorf("Expected completed 2, got %d", completed)
	}
}
