// ABOUTME: JSONL session persistence with append-only writes
// ABOUTME: Reads line-by-line with bufio.Scanner; crash-safe via O_APPEND

package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ram095/axeesAI/internal/config"
)

// RecordType identifies the type of JSONL record.
type RecordType string

const (
	RecordSessionStart RecordType = "session_start"
	RecordTurn         RecordType = "turn"
	RecordScan         RecordType = "scan"
	RecordClear        RecordType = "clear"
	RecordSessionEnd   RecordType = "session_end"
)

// Record is the envelope for all JSONL entries.
type Record struct {
	Version int             `json:"v"`
	Type    RecordType      `json:"type"`
	TS      string          `json:"ts"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// SessionStartData holds session_start metadata.
type SessionStartData struct {
	ID      string `json:"id"`
	BaseURL string `json:"base_url"`
	CWD     string `json:"cwd,omitempty"`
}

// TurnData holds one completed resolution turn. Command carries the
// dispatched command line ("scan https://example.com", "fix 2") and is
// empty when the turn was rejected before dispatch.
type TurnData struct {
	Utterance string `json:"utterance"`
	Command   string `json:"command,omitempty"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
}

// Journal values for TurnData.Outcome. Only rendered turns count toward
// command history when a journal is replayed.
const (
	OutcomeRendered = "rendered"
	OutcomeGuidance = "guidance"
	OutcomeFailed   = "failed"
)

// Writer appends records to a session JSONL file.
type Writer struct {
	file *os.File
}

// NewWriter creates a Writer for the given session ID under dir.
func NewWriter(dir, sessionID string) (*Writer, error) {
	if err := config.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating sessions dir: %w", err)
	}

	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening session file: %w", err)
	}

	return &Writer{file: f}, nil
}

// WriteRecord appends a record to the session file.
func (w *Writer) WriteRecord(recType RecordType, data any) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling record data: %w", err)
	}

	rec := Record{
		Version: 1,
		Type:    recType,
		TS:      time.Now().UTC().Format(time.RFC3339),
		Data:    dataBytes,
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	line = append(line, '\n')
	if _, err := w.file.Write(line); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Close closes the session file.
func (w *Writer) Close() error {
	return w.file.Close()
}

// ReadRecords reads all records from a session file under dir.
func ReadRecords(dir, sessionID string) ([]Record, error) {
	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening session %s: %w", sessionID, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue // Skip malformed lines
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("scanning session %s: %w", sessionID, err)
	}
	return records, nil
}

// LatestSessionID returns the ID of the most recently modified session
// file under dir.
func LatestSessionID(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no sessions found in %s", dir)
		}
		return "", fmt.Errorf("reading sessions dir: %w", err)
	}

	var (
		latestID string
		latestAt time.Time
	)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jsonl" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latestID == "" || info.ModTime().After(latestAt) {
			latestID = entry.Name()[:len(entry.Name())-len(".jsonl")]
			latestAt = info.ModTime()
		}
	}

	if latestID == "" {
		return "", fmt.Errorf("no sessions found in %s", dir)
	}
	return latestID, nil
}
