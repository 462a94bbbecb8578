// Package selection turns what the user pointed at (a file and a line range)
// into explicit values for the link pipeline.
package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned for line specs that are malformed, non-positive
// or reversed.
var ErrInvalidRange = errors.New("invalid line range")

// LineRange is a 1-based inclusive range of lines.
type LineRange struct {
	Start int
	End   int
}

// String formats the range the way it is accepted by Parse.
func (r LineRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Validate checks 1 <= Start <= End.
func (r LineRange) Validate() error {
	if r.Start < 1 || r.End < 1 {
		return fmt.Errorf("%w: lines start at 1, got %d-%d", ErrInvalidRange, r.Start, r.End)
	}
	if r.Start > r.End {
		return fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// FromZeroBased converts editor line indices (0-based) into a LineRange.
func FromZeroBased(startIdx, endIdx int) (LineRange, error) {
	r := LineRange{Start: startIdx + 1, End: endIdx + 1}
	if err := r.Validate(); err != nil {
		return LineRange{}, err
	}
	return r, nil
}

// Parse reads a line spec: "N", "N-M", "LN" or "LN-LM".
func Parse(spec string) (LineRange, error) {
	start, end, err := parseBounds(spec)
	if err != nil {
		return LineRange{}, err
	}
	r := LineRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return LineRange{}, err
	}
	return r, nil
}

// ParseZeroBased reads a line spec whose numbers are editor indices,
// so "0-9" selects lines 1-10.
func ParseZeroBased(spec string) (LineRange, error) {
	start, end, err := parseBounds(spec)
	if err != nil {
		return LineRange{}, err
	}
	return FromZeroBased(start, end)
}

func parseBounds(spec string) (start, end int, err error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, 0, fmt.Errorf("%w: empty", ErrInvalidRange)
	}

	startStr, endStr, isRange := strings.Cut(spec, "-")
	if start, err = parseLine(startStr); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
	}
	end = start
	if isRange {
		if end, err = parseLine(endStr); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
		}
	}
	return start, end, nil
}

func parseLine(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "L")
	if s == "" {
		return 0, errors.New("missing line number")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a line number: %q", s)
		}
	}
	return strconv.Atoi(s)
}

// SplitTarget splits "path/to/file.go:10-20" into the file and the line spec.
// The split happens at the last colon only when the suffix looks like a
// line spec, so paths containing colons are left intact.
func SplitTarget(arg string) (file, lines string) {
	idx := strings.LastIndex(arg, ":")
	if idx <= 0 || idx == len(arg)-1 {
		return arg, ""
	}
	suffix := arg[idx+1:]
	if !looksLikeLines(suffix) {
		return arg, ""
	}
	return arg[:idx], suffix
}

func looksLikeLines(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '-' && c != 'L' {
			return false
		}
	}
	return true
}
