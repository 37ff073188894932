package snapshot

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/driftwatch/internal/scanner"
)

func TestNewRecord_HumanFormDerived(t *testing.T) {
	at := time.Date(2024, 5, 17, 9, 30, 0, 0, time.Local)
	rec := NewRecord(scanner.ModTimeSeconds(at))

	if rec.LastModifiedHuman != "2024-05-17 09:30:00" {
		t.Errorf("LastModifiedHuman = %q, want %q", rec.LastModifiedHuman, "2024-05-17 09:30:00")
	}
}

func TestNewRecord_KeepsNumericValue(t *testing.T) {
	mt := 1715938200.25
	rec := NewRecord(mt)
	if rec.LastModified != mt {
		t.Errorf("LastModified = %v, want %v", rec.LastModified, mt)
	}
}

func TestNewRecord_HumanFormShape(t *testing.T) {
	rec := NewRecord(100.5)
	// "YYYY-MM-DD HH:MM:SS" regardless of zone.
	if len(rec.LastModifiedHuman) != 19 || !strings.Contains(rec.LastModifiedHuman, " ") {
		t.Errorf("LastModifiedHuman = %q, want YYYY-MM-DD HH:MM:SS shape", rec.LastModifiedHuman)
	}
}

func TestFromScan(t *testing.T) {
	files := []scanner.File{
		{Path: "/d/a.txt", ModTime: 100},
		{Path: "/d/b.txt", ModTime: 200.5},
	}

	snap := FromScan(files)

	if len(snap) != 2 {
		t.Fatalf("FromScan() has %d entries, want 2", len(snap))
	}
	if snap["/d/a.txt"].LastModified != 100 {
		t.Errorf("a.txt LastModified = %v, want 100", snap["/d/a.txt"].LastModified)
	}
	if snap["/d/b.txt"].LastModified != 200.5 {
		t.Errorf("b.txt LastModified = %v, want 200.5", snap["/d/b.txt"].LastModified)
	}
}

func TestFromScan_Empty(t *testing.T) {
	snap := FromScan(nil)
	if len(snap) != 0 {
		t.Errorf("FromScan(nil) has %d entries, want 0", len(snap))
	}
}
