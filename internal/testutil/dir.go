package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NewHallDir creates a temp concert-hall directory holding the given index
// lines and returns its path.
func NewHallDir(t *testing.T, indexLines ...string) string {
	t.Helper()
	root := t.TempDir()
	WriteHallFile(t, root, "Concert_list.txt", indexLines...)
	return root
}

// WriteConcertDir populates one concert's sub-directory with customer and
// booked-seat lines. Pass nil for a file that should not exist.
func WriteConcertDir(t *testing.T, root, concertID string, customerLines, seatLines []string) {
	t.Helper()
	dir := filepath.Join(root, concertID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create concert dir: %v", err)
	}
	if customerLines != nil {
		WriteHallFile(t, dir, "Customers.txt", customerLines...)
	}
	if seatLines != nil {
		WriteHallFile(t, dir, "Booked_seats.txt", seatLines...)
	}
}

// WriteHallFile writes lines to a file under dir, one per line with a
// trailing newline.
func WriteHallFile(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// ReadHallFile returns a file's contents as a string.
func ReadHallFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}
