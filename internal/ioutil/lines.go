package ioutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinName is the source name reported for standard input. StdinArg
// selects standard input when given in place of a file name.
const (
	StdinName = "<stdin>"
	StdinArg  = "-"
)

// Line is one line of input. Text keeps its terminator when it had one.
type Line struct {
	Source string
	Number int
	Text   string
}

// Inputs reads lines from a list of files in order, or from stdin when the
// list is empty.
type Inputs struct {
	names []string
	stdin io.Reader
	open  func(name string) (io.ReadCloser, error)
}

// NewInputs returns Inputs over names, falling back to stdin.
func NewInputs(names []string, stdin io.Reader) *Inputs {
	return &Inputs{
		names: names,
		stdin: stdin,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// Each calls fn for every line of every source, in order. It stops at the
// first error, whether from opening or reading a source or from fn itself.
// Each file is closed before the next one is opened.
//
// Named files end lines at "\n", "\r\n" or a lone "\r". Standard input
// only ends them at "\n".
func (in *Inputs) Each(fn func(Line) error) error {
	if len(in.names) == 0 {
		return eachLine(StdinName, in.stdin, readLine, fn)
	}

	for _, name := range in.names {
		if err := in.eachInFile(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func (in *Inputs) eachInFile(name string, fn func(Line) error) error {
	if name == StdinArg {
		return eachLine(StdinName, in.stdin, readLine, fn)
	}

	f, err := in.open(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	return eachLine(name, f, readUniversalLine, fn)
}

// readLine returns the next line ending in "\n", or the unterminated tail
// together with the read error.
func readLine(br *bufio.Reader) (string, error) {
	return br.ReadString('\n')
}

// readUniversalLine is readLine that also ends a line at "\r" and keeps
// "\r\n" together.
func readUniversalLine(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		sb.WriteByte(b)

		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			if next, err := br.Peek(1); err == nil && next[0] == '\n' {
				_, _ = br.ReadByte()
				sb.WriteByte('\n')
			}
			return sb.String(), nil
		}
	}
}

func eachLine(source string, r io.Reader, read func(*bufio.Reader) (string, error), fn func(Line) error) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		text, err := read(br)
		if text != "" {
			if ferr := fn(Line{Source: source, Number: n, Text: text}); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", source, err)
		}
	}
}
