// Package input reads integer answers from a line-oriented stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEndOfInput is returned when the stream closes before an answer is read.
var ErrEndOfInput = errors.New("end of input")

// Reader parses one integer per line.
type Reader struct {
	r      *bufio.Reader
	notice func()
}

// NewReader returns a Reader over r. notice is called after every line that
// is not an integer; it may be nil.
func NewReader(r io.Reader, notice func()) *Reader {
	return &Reader{r: bufio.NewReader(r), notice: notice}
}

// ReadInt blocks until a line parses as a signed decimal integer.
func (r *Reader) ReadInt() (int, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		n, perr := ParseInt(line)
		if perr == nil {
			return n, nil
		}
		if r.notice != nil {
			r.notice()
		}
	}
}

func (r *Reader) readLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrEndOfInput
			}
			return line, nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// ParseInt parses s after trimming surrounding whitespace.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty input")
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
