// Package attemptlog records placement attempts to a CSV file so a learner
// can review what they tried. It stores attempts only; sessions are never
// restored from it.
package attemptlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cleared-dev/statementlab/internal/placement"
)

// Entry is one placement attempt.
type Entry struct {
	Timestamp      time.Time
	SessionID      string
	Statement      string
	Account        string
	Classification string
	Zone           string
	Outcome        placement.Reason
	// HeldBy is the zone that already held the account, for duplicates.
	HeldBy string
}

// FromOutcome builds the entry for one placement outcome.
func FromOutcome(at time.Time, sessionID, statement string, out placement.Outcome) Entry {
	return Entry{
		Timestamp:      at.UTC(),
		SessionID:      sessionID,
		Statement:      statement,
		Account:        out.Account.Title,
		Classification: out.Account.Classification,
		Zone:           out.ZoneID,
		Outcome:        out.Reason,
		HeldBy:         out.PlacedIn,
	}
}

var header = []string{"timestamp", "session_id", "statement", "account", "classification", "zone", "outcome", "held_by"}

func (e Entry) record() []string {
	return []string{
		e.Timestamp.Format(time.RFC3339),
		e.SessionID,
		e.Statement,
		e.Account,
		e.Classification,
		e.Zone,
		string(e.Outcome),
		e.HeldBy,
	}
}

func parseRecord(rec []string) (Entry, error) {
	ts, err := time.Parse(time.RFC3339, rec[0])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", rec[0], err)
	}
	return Entry{
		Timestamp:      ts,
		SessionID:      rec[1],
		Statement:      rec[2],
		Account:        rec[3],
		Classification: rec[4],
		Zone:           rec[5],
		Outcome:        placement.Reason(rec[6]),
		HeldBy:         rec[7],
	}, nil
}

// Recorder collects the attempts of one session until they are flushed.
type Recorder struct {
	sessionID string
	now       func() time.Time
	entries   []Entry
}

// NewRecorder returns a Recorder stamping entries with sessionID and the
// time from now.
func NewRecorder(sessionID string, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{sessionID: sessionID, now: now}
}

// Record adds the outcome of an attempt on statement.
func (r *Recorder) Record(statement string, out placement.Outcome) {
	r.entries = append(r.entries, FromOutcome(r.now(), r.sessionID, statement, out))
}

// Entries returns the attempts recorded since the last flush.
func (r *Recorder) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Flush appends the pending attempts to the log at path and forgets them.
// Flushing with nothing pending does not touch the file.
func (r *Recorder) Flush(path string) error {
	if len(r.entries) == 0 {
		return nil
	}
	if err := appendEntries(path, r.entries); err != nil {
		return err
	}
	r.entries = nil
	return nil
}

func appendEntries(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening attempt log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if fresh {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(e.record()); err != nil {
			return fmt.Errorf("writing attempt %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing attempt log: %w", err)
	}
	return nil
}

// Read returns every attempt in the log at path. A missing file has none.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening attempt log: %w", err)
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	var entries []Entry
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading attempt log: %w", err)
		}
		if line == 1 {
			continue
		}
		e, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
}
