package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alem-hub/student-management/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// INPUT HELPERS
// Blocking retry-until-valid readers. A malformed line never aborts the
// operation: the prompt is repeated until the user gets it right.
// ══════════════════════════════════════════════════════════════════════════════

const (
	msgInvalidInteger = "Invalid integer. Try again."
	msgInvalidNumber  = "Invalid number. Try again."
	msgInvalidGrades  = "Enter space-separated numeric grades (e.g., 52 82.7 99)."
)

// Prompter reads line-oriented answers from the user.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints the prompt and returns the next line without its terminator.
// It returns shared.ErrInputClosed once the stream is exhausted.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt, " ")

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", shared.WrapError("console", "Read", shared.ErrInvalidState, "read failed", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", shared.ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadRequiredInt repeats the prompt until the line is a whole integer.
func (p *Prompter) ReadRequiredInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if v, ok := ParseInt(line); ok {
			return v, nil
		}
		fmt.Fprintln(p.out, msgInvalidInteger)
	}
}

// ReadRequiredFloat repeats the prompt until the line is a single decimal number.
func (p *Prompter) ReadRequiredFloat(prompt string) (float64, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if v, ok := ParseFloat(line); ok {
			return v, nil
		}
		fmt.Fprintln(p.out, msgInvalidNumber)
	}
}

// ReadFloatList repeats the prompt until every whitespace-separated token on
// the line is a decimal number. A blank line yields an empty, non-nil slice.
func (p *Prompter) ReadFloatList(prompt string) ([]float64, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return nil, err
		}
		if v, ok := ParseFloatList(line); ok {
			return v, nil
		}
		fmt.Fprintln(p.out, msgInvalidGrades)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Parsing
// ─────────────────────────────────────────────────────────────────────────────

// ParseInt parses a base-10 integer, ignoring surrounding whitespace.
func ParseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseFloat parses a finite decimal number, ignoring surrounding whitespace.
// NaN and infinities are rejected.
func ParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseFloatList parses whitespace-separated decimals. One bad token rejects
// the whole line.
func ParseFloatList(s string) ([]float64, bool) {
	fields := strings.Fields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, ok := ParseFloat(f)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
