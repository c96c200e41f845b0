// Package reader provides sequential line iteration over a list of input
// sources. Sources are read strictly in order, one line at a time; the token
// "-" means standard input.
package reader

import (
	"bufio"
	"io"
	"os"
)

// StdinName is the source name reported for lines read from standard input.
const StdinName = "<stdin>"

// maxLineSize bounds a single input line. Thinking blocks can run long, so
// this is well above bufio's default token limit.
const maxLineSize = 8 * 1024 * 1024

// Line is one raw input line with the name of the source it came from.
type Line struct {
	Source string
	Text   string
}

// Iterator yields lines from the configured sources in order. It is finite
// and not restartable.
type Iterator struct {
	paths  []string
	stdin  io.Reader
	onOpen func(path string)

	idx     int
	scanner *bufio.Scanner
	file    *os.File
	src     string
	err     error
}

// New builds an Iterator over paths. stdin is the reader used for "-"
// entries; injecting it keeps the iterator testable.
func New(paths []string, stdin io.Reader) *Iterator {
	return &Iterator{paths: paths, stdin: stdin}
}

// OnOpen registers a callback invoked with the path each time a real file
// (not stdin) is opened, before any of its lines are yielded.
func (it *Iterator) OnOpen(fn func(path string)) {
	it.onOpen = fn
}

// Next returns the next line. It reports false when all sources are
// exhausted or an error occurred; check Err afterwards.
func (it *Iterator) Next() (Line, bool) {
	for {
		if it.err != nil {
			return Line{}, false
		}
		if it.scanner == nil {
			if !it.advance() {
				return Line{}, false
			}
		}
		if it.scanner.Scan() {
			return Line{Source: it.src, Text: it.scanner.Text()}, true
		}
		if err := it.scanner.Err(); err != nil {
			it.err = err
		}
		it.closeCurrent()
	}
}

// Err returns the first error encountered while opening or reading a source.
func (it *Iterator) Err() error {
	return it.err
}

// advance opens the next source, if any.
func (it *Iterator) advance() bool {
	if it.idx >= len(it.paths) {
		return false
	}
	p := it.paths[it.idx]
	it.idx++

	if p == "-" {
		it.src = StdinName
		it.scanner = newScanner(it.stdin)
		return true
	}

	f, err := os.Open(p)
	if err != nil {
		it.err = err
		return false
	}
	if it.onOpen != nil {
		it.onOpen(p)
	}
	it.file = f
	it.src = p
	it.scanner = newScanner(f)
	return true
}

func (it *Iterator) closeCurrent() {
	if it.file != nil {
		it.file.Close()
		it.file = nil
	}
	it.scanner = nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), maxLineSize)
	return s
}
