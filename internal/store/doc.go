// Package store owns the ordered task list and its persisted form.
//
// # File Format
//
// The store is a single YAML file holding the full task sequence and the
// next-id counter:
//
//	version: 1
//	next_id: 3
//	tasks:
//	  - id: 1
//	    description: "Write README"
//	    completed: false
//	    created_at: 2025-01-25T10:00:00Z
//	    updated_at: 2025-01-25T10:00:00Z
//	  - id: 2
//	    description: "Cut a release"
//	    completed: true
//	    created_at: 2025-01-25T10:05:00Z
//	    updated_at: 2025-01-26T09:00:00Z
//
// # ID Assignment
//
// IDs come from the persisted next_id counter and are strictly increasing
// for the lifetime of the store. Deleting a task never frees its id, and
// surviving tasks are never renumbered. If the counter on disk lags behind
// the highest id in the file, Load bumps it past the maximum so an id is
// never handed out twice.
//
// # Persistence
//
// Every invocation loads the full file into memory, mutates it in place,
// and writes the full state back through a temp file and rename. There is
// no file locking: two concurrent invocations against the same file can
// race, last writer wins. This is an accepted limitation of a single-user
// local tool, not something the store tries to hide.
package store
