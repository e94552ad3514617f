// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source produces raw NMEA sentences, one per message on sendCh, until the
// input ends, an error occurs or stop is signaled. At the end of the input
// io.EOF is sent on errCh.
type Source interface {
	Start(sendCh chan<- []byte, stop <-chan bool, errCh chan<- error)
}

type Line struct {
	Line  []byte
	Error error
}

// Reader reads sentences from an already open stream such as stdin.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (s *Reader) Start(sendCh chan<- []byte, stop <-chan bool, errCh chan<- error) {
	if err := scan(s.r, sendCh, stop); err != nil {
		errCh <- fmt.Errorf("source/Reader.Start: %w", err)
		return
	}
	errCh <- io.EOF
}

// File reads sentences from a file, e.g. a recorded receiver log or a
// device node that is already configured.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (s *File) Start(sendCh chan<- []byte, stop <-chan bool, errCh chan<- error) {
	fd, err := os.Open(s.path)
	if err != nil {
		errCh <- fmt.Errorf("source/File.Start: %w", err)
		return
	}
	defer fd.Close()

	if err := scan(fd, sendCh, stop); err != nil {
		errCh <- fmt.Errorf("source/File.Start: %w", err)
		return
	}
	errCh <- io.EOF
}

// New returns the source named by path, "stdin" or "-" meaning standard
// input.
func New(path string) Source {
	switch path {
	case "stdin", "-":
		return NewReader(os.Stdin)
	}
	return NewFile(path)
}

// scan sends every non-empty line of r with surrounding whitespace (and so
// any CR/LF terminator) removed.
func scan(r io.Reader, sendCh chan<- []byte, stop <-chan bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case <-stop:
			return nil
		case sendCh <- []byte(line):
		}
	}
	return scanner.Err()
}

// Lines runs src and collects its output into a channel of Line values. The
// channel is closed when the source ends or stop is closed, even if nobody
// is receiving; a read error is delivered as the last Line.
func Lines(src Source, stop <-chan bool) <-chan Line {
	out := make(chan Line)
	sendCh := make(chan []byte)
	errCh := make(chan error, 1)

	go src.Start(sendCh, stop, errCh)

	go func() {
		defer close(out)
		emit := func(l Line) bool {
			select {
			case out <- l:
				return true
			case <-stop:
				return false
			}
		}
		for {
			select {
			case l := <-sendCh:
				if !emit(Line{Line: l}) {
					return
				}
			case err := <-errCh:
				if err != io.EOF {
					emit(Line{Error: err})
				}
				return
			case <-stop:
				return
			}
		}
	}()

	return out
}
