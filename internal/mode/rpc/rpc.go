// ABOUTME: RPC mode for external integrations (IDE extensions)
// ABOUTME: JSONL-based protocol over stdin/stdout

package rpc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Server handles RPC requests from an external client.
type Server struct {
	reader  *bufio.Scanner
	writer  io.Writer
	handler func(Request) Response
	stopped bool
}

// NewServer creates an RPC server reading from stdin, writing to stdout.
func NewServer(handler func(Request) Response) *Server {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024)
	return &Server{
		reader:  scanner,
		writer:  os.Stdout,
		handler: handler,
	}
}

// Stop makes Run return after the response in flight is written. The
// shutdown handler calls it.
func (s *Server) Stop() {
	s.stopped = true
}

// Run processes requests until EOF, a write failure, or Stop.
func (s *Server) Run() error {
	for s.reader.Scan() {
		var req Request
		if err := json.Unmarshal(s.reader.Bytes(), &req); err != nil {
			s.sendError("", NewParseError(fmt.Sprintf("parse error: %v", err)))
			continue
		}

		resp := s.handler(req)
		resp.ID = req.ID

		data, err := json.Marshal(resp)
		if err != nil {
			s.sendError(req.ID, NewInternalError(fmt.Sprintf("encoding response: %v", err)))
			continue
		}

		data = append(data, '\n')
		if _, err := s.writer.Write(data); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}

		if s.stopped {
			return nil
		}
	}

	return s.reader.Err()
}

func (s *Server) sendError(id string, rpcErr *Error) {
	resp := Response{ID: id, Error: rpcErr}
	data, _ := json.Marshal(resp)
	data = append(data, '\n')
	_, _ = s.writer.Write(data)
}
