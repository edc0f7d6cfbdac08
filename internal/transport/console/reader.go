package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// LineReader hands out input lines one at a time. Reading happens in its own
// goroutine so a waiting caller can still be cancelled.
type LineReader struct {
	lines chan string

	// set before lines is closed
	err error
}

func NewLineReader(in io.Reader) *LineReader {
	reader := &LineReader{lines: make(chan string)}

	go reader.scan(in)

	return reader
}

func (that *LineReader) scan(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	if err := scanner.Err(); err != nil {
		that.err = fmt.Errorf("failed to read input: %w", err)
	} else {
		that.err = io.EOF
	}

	close(that.lines)
}

// ReadLine - blocks until the next line arrives, input ends or ctx is done.
func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text, ok := <-that.lines:
		if !ok {
			return "", that.err
		}

		return text, nil
	}
}
