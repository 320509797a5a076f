// Package trace reads and writes cache operation scripts.
//
// A trace is UTF-8 text with one operation per line:
//
//	# comment
//	put A Hello
//	get A
//	put B None
//
// Fields are separated by whitespace; a put value is the rest of the line
// with runs of whitespace collapsed to single spaces.
// The literal None stands for an absent key or value, as does a put with
// no value at all.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("trace: syntax error")

// None is the spelling of an absent key or value.
const None = "None"

// OpKind is a cache operation.
type OpKind int

// Operation kinds.
const (
	Put OpKind = iota + 1
	Get
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case Put:
		return "put"
	case Get:
		return "get"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one line of a trace.
type Op struct {
	Kind  OpKind
	Key   string
	Value string

	// KeyAbsent and ValueAbsent mark None (or a missing put value).
	KeyAbsent   bool
	ValueAbsent bool

	// Line is the 1-based source line, 0 for ops built in code.
	Line int
}

// PutOp returns a put of value under key.
func PutOp(key, value string) Op {
	return Op{Kind: Put, Key: key, Value: value}
}

// GetOp returns a get of key.
func GetOp(key string) Op {
	return Op{Kind: Get, Key: key}
}

// Parse reads every operation from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return ops, nil
}

func parseLine(text string) (Op, error) {
	fields := strings.Fields(text)
	verb := strings.ToLower(fields[0])
	if len(fields) < 2 {
		return Op{}, fmt.Errorf("%w: %s without key", ErrSyntax, verb)
	}

	key := fields[1]
	op := Op{Key: key, KeyAbsent: key == None}
	switch verb {
	case "put":
		op.Kind = Put
		op.Value = strings.Join(fields[2:], " ")
		op.ValueAbsent = op.Value == "" || op.Value == None
	case "get":
		if len(fields) > 2 {
			return Op{}, fmt.Errorf("%w: get takes one key, got %d", ErrSyntax, len(fields)-1)
		}
		op.Kind = Get
	default:
		return Op{}, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}
	return op, nil
}

// Write writes ops to w in the format accepted by Parse.
func Write(w io.Writer, ops []Op) error {
	bw := bufio.NewWriter(w)
	for _, op := range ops {
		key := op.Key
		if op.KeyAbsent {
			key = None
		}
		var err error
		switch op.Kind {
		case Put:
			value := op.Value
			if op.ValueAbsent {
				value = None
			}
			_, err = fmt.Fprintf(bw, "put %s %s\n", key, value)
		case Get:
			_, err = fmt.Fprintf(bw, "get %s\n", key)
		default:
			err = fmt.Errorf("writing trace: unknown op kind %s", op.Kind)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Keys returns the key of every operation with a present key, in order.
func Keys(ops []Op) []string {
	keys := make([]string, 0, len(ops))
	for _, op := range ops {
		if !op.KeyAbsent {
			keys = append(keys, op.Key)
		}
	}
	return keys
}
