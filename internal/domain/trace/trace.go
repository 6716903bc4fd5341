// Package trace defines the line-oriented operation format replayed against a cache.
//
//	# comment
//	put <key> <value>
//	get <key>
//
// Lines may be up to MaxLineSize bytes long.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidTrace is returned for lines that are not a valid operation.
var ErrInvalidTrace = errors.New("invalid trace")

// Kind identifies a cache operation.
type Kind string

const (
	KindGet Kind = "get"
	KindPut Kind = "put"
)

// Op is one cache operation read from a trace.
type Op struct {
	Line  int // 1-based source line, 0 when parsed standalone
	Kind  Kind
	Key   string
	Value string // put only
}

func (o Op) String() string {
	if o.Kind == KindPut {
		return fmt.Sprintf("put %s %s", o.Key, o.Value)
	}
	return fmt.Sprintf("get %s", o.Key)
}

// ParseLine parses a single operation. Values may contain spaces; keys may not.
func ParseLine(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("%w: empty operation", ErrInvalidTrace)
	}

	switch Kind(strings.ToLower(fields[0])) {
	case KindGet:
		if len(fields) != 2 {
			return Op{}, fmt.Errorf("%w: usage: get <key>", ErrInvalidTrace)
		}
		return Op{Kind: KindGet, Key: fields[1]}, nil
	case KindPut:
		if len(fields) < 3 {
			return Op{}, fmt.Errorf("%w: usage: put <key> <value>", ErrInvalidTrace)
		}
		rest := strings.TrimSpace(line)
		rest = strings.TrimSpace(rest[len(fields[0]):])
		rest = strings.TrimSpace(rest[len(fields[1]):])
		return Op{Kind: KindPut, Key: fields[1], Value: rest}, nil
	default:
		return Op{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidTrace, fields[0])
	}
}

// MaxLineSize is the longest trace line Parse accepts.
const MaxLineSize = 1 << 20

// Parse reads every operation from r, skipping blank lines and # comments.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		op.Line = lineNo
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return ops, nil
}
