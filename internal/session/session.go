// ABOUTME: Session state for one resolution conversation: scan record plus history
// ABOUTME: Journals every state change so --continue can replay it later

package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Session holds the conversational state the resolver and dispatcher
// read and update. Turns are strictly sequential; Session is not safe
// for concurrent use.
type Session struct {
	ID      string
	BaseURL string
	Scan    *ScanRecord
	History CommandHistory

	writer *Writer // nil when persistence is disabled
}

// Config describes how to open a session.
type Config struct {
	ID      string // generated when empty
	BaseURL string
	Dir     string // journal directory; empty disables persistence
}

// NewSession creates a fresh session and, when cfg.Dir is set, starts
// its journal with a session_start record.
func NewSession(cfg Config) (*Session, error) {
	if cfg.ID == "" {
		id, err := NewID()
		if err != nil {
			return nil, err
		}
		cfg.ID = id
	}

	s := &Session{ID: cfg.ID, BaseURL: cfg.BaseURL}
	if cfg.Dir == "" {
		return s, nil
	}

	writer, err := NewWriter(cfg.Dir, cfg.ID)
	if err != nil {
		return nil, fmt.Errorf("creating session writer: %w", err)
	}
	s.writer = writer

	cwd, _ := os.Getwd()
	if err := writer.WriteRecord(RecordSessionStart, SessionStartData{
		ID:      cfg.ID,
		BaseURL: cfg.BaseURL,
		CWD:     cwd,
	}); err != nil {
		return nil, fmt.Errorf("writing session start: %w", err)
	}
	return s, nil
}

// NewID creates a 16-byte cryptographically random hex session ID.
func NewID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ReplaceScan installs rec wholesale and persists it. Issue numbers
// handed out under the previous record no longer resolve.
func (s *Session) ReplaceScan(rec *ScanRecord) error {
	s.Scan = rec
	return s.journal(RecordScan, rec)
}

// RecordTurn persists a completed turn. History updates happen at
// dispatch time; journal replay re-derives them from rendered turns.
func (s *Session) RecordTurn(turn TurnData) error {
	return s.journal(RecordTurn, turn)
}

// Reset clears the scan record and command history.
func (s *Session) Reset() error {
	s.Scan = nil
	s.History.Clear()
	return s.journal(RecordClear, nil)
}

// Close writes the session end record and closes the journal.
func (s *Session) Close() error {
	if s.writer == nil {
		return nil
	}
	if err := s.writer.WriteRecord(RecordSessionEnd, nil); err != nil {
		s.writer.Close()
		return fmt.Errorf("writing session end: %w", err)
	}
	return s.writer.Close()
}

func (s *Session) journal(recType RecordType, data any) error {
	if s.writer == nil {
		return nil
	}
	return s.writer.WriteRecord(recType, data)
}

// Resume reopens the most recently modified session under dir and
// replays its journal.
func Resume(dir string) (*Session, error) {
	id, err := LatestSessionID(dir)
	if err != nil {
		return nil, err
	}
	return ResumeID(dir, id)
}

// ResumeID rebuilds session state from a journal and reopens it for
// appending. Replay mirrors live updates: the last scan record wins,
// only rendered turns enter history, and clear records drop both.
func ResumeID(dir, id string) (*Session, error) {
	records, err := ReadRecords(dir, id)
	if err != nil {
		return nil, err
	}

	s := &Session{ID: id}
	for _, rec := range records {
		switch rec.Type {
		case RecordSessionStart:
			var start SessionStartData
			if err := json.Unmarshal(rec.Data, &start); err == nil {
				s.BaseURL = start.BaseURL
			}
		case RecordScan:
			var scan ScanRecord
			if err := json.Unmarshal(rec.Data, &scan); err == nil {
				s.Scan = &scan
			}
		case RecordTurn:
			var turn TurnData
			if err := json.Unmarshal(rec.Data, &turn); err != nil {
				continue
			}
			if turn.Outcome == OutcomeRendered && turn.Command != "" {
				s.History.Append(turn.Command)
			}
		case RecordClear:
			s.Scan = nil
			s.History.Clear()
		}
	}

	writer, err := NewWriter(dir, id)
	if err != nil {
		return nil, fmt.Errorf("reopening session journal: %w", err)
	}
	s.writer = writer
	return s, nil
}
