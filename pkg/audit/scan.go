package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Filter narrows a Scan to matching events. Zero-valued fields match
// everything.
type Filter struct {
	EventType   string
	Actor       string
	WorkflowID  string
	ExecutionID string
	Phase       string
	BypassID    string
	Since       time.Time
	Until       time.Time
}

func (f Filter) matches(e Event) bool {
	if f.EventType != "" && e.EventType != f.EventType {
		return false
	}
	if f.Actor != "" && e.Actor != f.Actor {
		return false
	}
	if f.WorkflowID != "" && e.WorkflowID != f.WorkflowID {
		return false
	}
	if f.ExecutionID != "" && e.ExecutionID != f.ExecutionID {
		return false
	}
	if f.Phase != "" && e.Phase != f.Phase {
		return false
	}
	if f.BypassID != "" && e.BypassID != f.BypassID {
		return false
	}
	if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && e.Timestamp.After(f.Until) {
		return false
	}
	return true
}

// Scan streams matching events from the audit file at path, invoking fn
// for each. Returning false from fn stops the scan early. Malformed
// lines are skipped with a warning rather than failing the scan, so a
// partially corrupted trail still yields its intact entries.
func Scan(path string, filter Filter, fn func(Event) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()
	return scanReader(f, path, filter, fn)
}

func scanReader(r io.Reader, path string, filter Filter, fn func(Event) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			skipped++
			slog.Warn("Skipping malformed audit line",
				"path", path,
				"line", lineNo,
				"error", err)
			continue
		}
		if !filter.matches(event) {
			continue
		}
		if !fn(event) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}
	if skipped > 0 {
		slog.Warn("Audit scan skipped malformed lines", "path", path, "skipped", skipped)
	}
	return nil
}

// Collect gathers all matching events into a slice. Convenience wrapper
// over Scan for callers that need the full result set.
func Collect(path string, filter Filter) ([]Event, error) {
	var events []Event
	err := Scan(path, filter, func(e Event) bool {
		events = append(events, e)
		return true
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
