package codegen

import "fmt"

// NextLetterDigitsCode returns the code following the greatest code in
// existing that matches ^[A-Z]\d{digitWidth}$. Entries that do not match,
// including empty strings for missing codes, are ignored. With no match the
// result is startPrefix followed by 1 padded to digitWidth.
func NextLetterDigitsCode(existing []string, digitWidth int, startPrefix byte) (string, error) {
	f, err := LetterDigits(letterKind(digitWidth), digitWidth, startPrefix)
	if err != nil {
		return "", err
	}
	return f.Next(existing)
}

// letterKind names a letter sequence by its width. Widths without a built-in
// format get KindCode.
func letterKind(width int) Kind {
	switch width {
	case Removal.Width:
		return KindRemoval
	case Contract.Width:
		return KindContract
	default:
		return KindCode
	}
}

// NextRemovalCode returns the next removal code (A000001 style)
func NextRemovalCode(codes []string) (string, error) {
	return Removal.Next(codes)
}

// NextPreventiveContractCode returns the next PRE_ code
func NextPreventiveContractCode(codes []string) (string, error) {
	return Preventive.Next(codes)
}

// NextContractNumber returns the next contract number. numbers holds the
// contract number field of each record, empty where a record has none.
func NextContractNumber(numbers []string) (string, error) {
	return Contract.Next(numbers)
}

// Sequence generates n consecutive codes, feeding each result back into the
// working set. On exhaustion it returns the codes produced so far with the error.
func Sequence(f Format, existing []string, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidFormat, n)
	}

	// Only the latest valid code matters, so the working set stays at one entry
	working := make([]string, 0, 1)
	if latest, ok := f.Latest(existing); ok {
		working = append(working, latest)
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		code, err := f.Next(working)
		if err != nil {
			return out, err
		}
		out = append(out, code)
		working = append(working[:0], code)
	}
	return out, nil
}
