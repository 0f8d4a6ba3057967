// Package report writes the line-oriented diagnostic logs produced by the
// compiler.
package report

import (
	"bufio"
	"fmt"
	"os"
)

// DefaultBufferSize is the buffer size used when none is given.
const DefaultBufferSize = 4096

// Sink is a buffered, append-only log file. Lines are flushed to disk when
// the buffer fills and on Close.
type Sink struct {
	f     *os.File
	w     *bufio.Writer
	lines int
}

// Create creates or truncates the file at path.
func Create(path string, size int) (*Sink, error) {
	if size <= 0 {
		size = DefaultBufferSize
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating log: %w", err)
	}
	return &Sink{f: f, w: bufio.NewWriterSize(f, size)}, nil
}

// Append writes line followed by a newline.
func (s *Sink) Append(line string) error {
	s.lines++
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// AppendAll writes each line in order.
func (s *Sink) AppendAll(lines []string) error {
	for _, line := range lines {
		if err := s.Append(line); err != nil {
			return err
		}
	}
	return nil
}

// Writer exposes the buffer for bulk output such as token dumps.
func (s *Sink) Writer() *bufio.Writer {
	return s.w
}

// Lines returns the number of lines appended.
func (s *Sink) Lines() int {
	return s.lines
}

// Name returns the file name.
func (s *Sink) Name() string {
	return s.f.Name()
}

// Close flushes buffered lines and closes the file.
func (s *Sink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("flushing %s: %w", s.f.Name(), err)
	}
	return s.f.Close()
}

// WriteFile creates path and writes lines to it.
func WriteFile(path string, lines []string) error {
	s, err := Create(path, 0)
	if err != nil {
		return err
	}
	if err := s.AppendAll(lines); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}
