// Package codegen derives the next human-readable code for removal records,
// preventive contracts and contract numbers from a snapshot of existing codes.
//
// Every function in this package is a pure function of its arguments. Two
// callers working from the same snapshot get the same result, so callers that
// need unique codes must serialize generation and persistence themselves.
package codegen

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies a code format
type Kind string

const (
	// KindRemoval is a removal code: one letter and 6 digits (A000123)
	KindRemoval Kind = "removal"
	// KindPreventive is a preventive contract code: PRE_ and 8 digits
	KindPreventive Kind = "preventive"
	// KindContract is a contract number: one letter and 8 digits
	KindContract Kind = "contract"
	// KindCode labels a letter-digits sequence with no built-in format
	KindCode Kind = "code"
)

var (
	// ErrSequenceExhausted is returned when the next code would not fit its format
	ErrSequenceExhausted = errors.New("code sequence exhausted")

	// ErrInvalidFormat is returned for an unusable format definition
	ErrInvalidFormat = errors.New("invalid code format")

	// ErrUnknownKind is returned by FormatFor for an unknown kind
	ErrUnknownKind = errors.New("unknown code kind")
)

// ExhaustedError reports which sequence ran out and the code it stopped at
type ExhaustedError struct {
	Kind Kind
	Last string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: no code after %s", e.Kind, e.Last)
}

// Is makes errors.Is(err, ErrSequenceExhausted) hold
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrSequenceExhausted
}

// maxWidth keeps 10^Width - 1 inside uint64
const maxWidth = 18

// Format describes one fixed-width code layout.
//
// A letter format has a single A-Z prefix that advances when the digits
// overflow. A fixed format has a literal prefix and cannot carry.
type Format struct {
	Kind    Kind
	Width   int
	Start   byte   // letter formats
	Literal string // fixed formats

	pattern *regexp.Regexp
}

// LetterDigits returns a letter-prefixed format starting at start
func LetterDigits(kind Kind, width int, start byte) (Format, error) {
	if width < 1 || width > maxWidth {
		return Format{}, fmt.Errorf("%w: digit width %d", ErrInvalidFormat, width)
	}
	if start < 'A' || start > 'Z' {
		return Format{}, fmt.Errorf("%w: start prefix %q", ErrInvalidFormat, start)
	}
	return Format{
		Kind:    kind,
		Width:   width,
		Start:   start,
		pattern: regexp.MustCompile(fmt.Sprintf(`^[A-Z]\d{%d}$`, width)),
	}, nil
}

// FixedPrefix returns a format with a constant literal prefix
func FixedPrefix(kind Kind, literal string, width int) (Format, error) {
	if width < 1 || width > maxWidth {
		return Format{}, fmt.Errorf("%w: digit width %d", ErrInvalidFormat, width)
	}
	if literal == "" {
		return Format{}, fmt.Errorf("%w: empty literal prefix", ErrInvalidFormat)
	}
	return Format{
		Kind:    kind,
		Width:   width,
		Literal: literal,
		pattern: regexp.MustCompile(fmt.Sprintf(`^%s\d{%d}$`, regexp.QuoteMeta(literal), width)),
	}, nil
}

func mustFormat(f Format, err error) Format {
	if err != nil {
		panic(err)
	}
	return f
}

var (
	// Removal is the removal code format
	Removal = mustFormat(LetterDigits(KindRemoval, 6, 'A'))
	// Preventive is the preventive contract code format
	Preventive = mustFormat(FixedPrefix(KindPreventive, "PRE_", 8))
	// Contract is the contract number format
	Contract = mustFormat(LetterDigits(KindContract, 8, 'A'))
)

// FormatFor returns the built-in format for a kind
func FormatFor(kind Kind) (Format, error) {
	switch kind {
	case KindRemoval:
		return Removal, nil
	case KindPreventive:
		return Preventive, nil
	case KindContract:
		return Contract, nil
	default:
		return Format{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ParseKind converts a command-line name to a Kind
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, err := FormatFor(kind); err != nil {
		return "", err
	}
	return kind, nil
}

// Kinds lists the built-in kinds in display order
func Kinds() []Kind {
	return []Kind{KindRemoval, KindPreventive, KindContract}
}

// WithStart returns a copy of a letter format with a different start letter
func (f Format) WithStart(start byte) (Format, error) {
	if f.isFixed() {
		return Format{}, fmt.Errorf("%w: %s has a fixed prefix", ErrInvalidFormat, f.Kind)
	}
	return LetterDigits(f.Kind, f.Width, start)
}

func (f Format) isFixed() bool {
	return f.Literal != ""
}

// Valid reports whether code matches the format exactly
func (f Format) Valid(code string) bool {
	if f.pattern == nil {
		return false
	}
	return f.pattern.MatchString(code)
}

// Filter returns the codes that match the format, in input order
func (f Format) Filter(codes []string) []string {
	valid := make([]string, 0, len(codes))
	for _, c := range codes {
		if f.Valid(c) {
			valid = append(valid, c)
		}
	}
	return valid
}

// Latest returns the greatest valid code under byte-wise ordering
func (f Format) Latest(codes []string) (string, bool) {
	valid := f.Filter(codes)
	if len(valid) == 0 {
		return "", false
	}
	sort.Strings(valid)
	return valid[len(valid)-1], true
}

// First returns the code used when no valid code exists yet
func (f Format) First() string {
	return f.prefix(f.Start) + f.pad(1)
}

// Next returns the successor of the latest valid code in codes
func (f Format) Next(codes []string) (string, error) {
	if f.pattern == nil {
		return "", fmt.Errorf("%w: uninitialised format", ErrInvalidFormat)
	}

	latest, ok := f.Latest(codes)
	if !ok {
		return f.First(), nil
	}

	head := len(latest) - f.Width
	n, err := strconv.ParseUint(latest[head:], 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidFormat, latest, err)
	}

	if n < f.max() {
		return latest[:head] + f.pad(n+1), nil
	}

	if f.isFixed() || latest[0] == 'Z' {
		return "", &ExhaustedError{Kind: f.Kind, Last: latest}
	}
	return f.prefix(latest[0]+1) + f.pad(1), nil
}

func (f Format) prefix(letter byte) string {
	if f.isFixed() {
		return f.Literal
	}
	return string(letter)
}

func (f Format) pad(n uint64) string {
	return fmt.Sprintf("%0*d", f.Width, n)
}

// max is 10^Width - 1
func (f Format) max() uint64 {
	var m uint64 = 1
	for i := 0; i < f.Width; i++ {
		m *= 10
	}
	return m - 1
}
