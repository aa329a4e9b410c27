// Package console implements the interactive editor for the calculator: a
// six row panel with an input line edited in place and an output line that
// shows the result of the last evaluation.
package console

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/graeme-hill/calcstuff-go/lib"
)

const (
	rowInputHeader = iota
	rowInput
	rowInputFooter
	rowOutputHeader
	rowOutput
	rowOutputFooter
)

const (
	inputHeader  = "-INPUT-------------"
	outputHeader = "-OUTPUT------------"
	footer       = "-------------------"
)

type EvalFunc func(expr string) (float64, error)

// Session owns the edit buffer and the cursor. The cursor position is kept
// relative to the top-left corner of the panel, which is wherever the
// terminal cursor was when Run started.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	eval   EvalFunc
	frame  bytes.Buffer
	input  []rune
	caret  int
	output string
	row    int
	col    int
}

// NewSession creates a session reading keys from in and drawing to out.
// A nil eval uses lib.Evaluate.
func NewSession(in io.Reader, out io.Writer, eval EvalFunc) *Session {
	if eval == nil {
		eval = lib.Evaluate
	}
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		eval:   eval,
		input:  []rune{},
		output: "0",
	}
}

func (s *Session) Input() string {
	return string(s.input)
}

func (s *Session) Caret() int {
	return s.caret
}

func (s *Session) Output() string {
	return s.output
}

type keyEvent struct {
	k   key
	ch  rune
	err error
}

// Run draws the panel and processes keys until a quit key, the end of
// input, or ctx is cancelled. A failed evaluation is shown on the output
// line and editing continues.
func (s *Session) Run(ctx context.Context) error {
	s.draw()
	if err := s.flush(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	keys := s.readKeys(done)

	for {
		var ev keyEvent
		select {
		case <-ctx.Done():
			_ = s.finish()
			return ctx.Err()
		case ev = <-keys:
		}

		if ev.err == io.EOF {
			return s.finish()
		}
		if ev.err != nil {
			return ev.err
		}
		if ev.k == keyQuit {
			return s.finish()
		}
		s.handle(ev.k, ev.ch)
		if err := s.flush(); err != nil {
			return err
		}
	}
}

// readKeys decodes keys on its own goroutine so that Run can give up on a
// blocked read. It stops after the first error or quit key, or once done
// is closed.
func (s *Session) readKeys(done <-chan struct{}) <-chan keyEvent {
	keys := make(chan keyEvent)
	go func() {
		for {
			k, ch, err := s.readKey()
			select {
			case keys <- keyEvent{k: k, ch: ch, err: err}:
			case <-done:
				return
			}
			if err != nil || k == keyQuit {
				return
			}
		}
	}()
	return keys
}

func (s *Session) handle(k key, ch rune) {
	switch k {
	case keyRune:
		s.input = append(s.input, 0)
		copy(s.input[s.caret+1:], s.input[s.caret:])
		s.input[s.caret] = ch
		s.caret++
	case keyBackspace:
		if s.caret > 0 {
			s.input = append(s.input[:s.caret-1], s.input[s.caret:]...)
			s.caret--
		}
	case keyDelete:
		if s.caret < len(s.input) {
			s.input = append(s.input[:s.caret], s.input[s.caret+1:]...)
		}
	case keyLeft:
		if s.caret > 0 {
			s.caret--
		}
	case keyRight:
		if s.caret < len(s.input) {
			s.caret++
		}
	case keyHome:
		s.caret = 0
	case keyEnd:
		s.caret = len(s.input)
	case keyEnter:
		s.submit()
	default:
		return
	}
	s.rewrite(rowInput, string(s.input))
	s.moveTo(rowInput, s.caret)
}

func (s *Session) submit() {
	value, err := s.eval(string(s.input))
	if err != nil {
		s.output = "error: " + err.Error()
	} else {
		s.output = lib.FormatResult(value)
	}
	s.input = s.input[:0]
	s.caret = 0
	s.rewrite(rowOutput, s.output)
}

func (s *Session) draw() {
	lines := []string{inputHeader, string(s.input), footer, outputHeader, s.output, footer}
	for i, line := range lines {
		s.frame.WriteString(line)
		if i < len(lines)-1 {
			s.frame.WriteString("\r\n")
		}
	}
	s.row = rowOutputFooter
	s.col = utf8.RuneCountInString(footer)
	s.moveTo(rowInput, s.caret)
}

// Leaves the cursor on the line below the panel.
func (s *Session) finish() error {
	s.moveTo(rowOutputFooter, 0)
	s.frame.WriteString("\r\n")
	return s.flush()
}

func (s *Session) moveTo(row, col int) {
	if row < s.row {
		fmt.Fprintf(&s.frame, "\x1b[%dA", s.row-row)
	} else if row > s.row {
		fmt.Fprintf(&s.frame, "\x1b[%dB", row-s.row)
	}
	s.frame.WriteString("\r")
	if col > 0 {
		fmt.Fprintf(&s.frame, "\x1b[%dC", col)
	}
	s.row = row
	s.col = col
}

func (s *Session) rewrite(row int, text string) {
	s.moveTo(row, 0)
	s.frame.WriteString("\x1b[2K")
	s.frame.WriteString(text)
	s.col = utf8.RuneCountInString(text)
}

func (s *Session) flush() error {
	if s.frame.Len() == 0 {
		return nil
	}
	_, err := s.out.Write(s.frame.Bytes())
	s.frame.Reset()
	return err
}
