// Package testutil provides reusable helpers for tasg tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Ce11an/tasg/internal/config"
)

// TestEnv provides access to an isolated store location.
type TestEnv struct {
	Dir      string // Temp directory for this test
	DataFile string // Task store file inside Dir
	t        *testing.T
}

// SetupTestEnv points TASG_FILE at a file inside a temp directory.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic
// env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "tasks.yaml")
	t.Setenv(config.EnvDataFile, dataFile)

	return &TestEnv{
		Dir:      dir,
		DataFile: dataFile,
		t:        t,
	}
}

// WriteDataFile writes raw content to the store file.
func (e *TestEnv) WriteDataFile(content string) {
	e.t.Helper()

	if err := os.WriteFile(e.DataFile, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write data file: %v", err)
	}
}

// ReadDataFile reads the raw store file.
func (e *TestEnv) ReadDataFile() string {
	e.t.Helper()

	data, err := os.ReadFile(e.DataFile)
	if err != nil {
		e.t.Fatalf("Failed to read data file: %v", err)
	}
	return string(data)
}

// DataFileExists reports whether the store file has been written.
func (e *TestEnv) DataFileExists() bool {
	e.t.Helper()

	_, err := os.Stat(e.DataFile)
	return err == nil
}
