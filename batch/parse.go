package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCodes reads one code per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
// Returns ErrEmptyInput when no code remains.
func ParseCodes(r io.Reader) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("batch: read codes: %w", err)
	}
	if len(codes) == 0 {
		return nil, ErrEmptyInput
	}
	return codes, nil
}

// NumericValue returns the integer formed by the digits of code, ignoring
// every other label: "029A" → 29.
// Returns ErrNoDigits when code has no digits.
func NumericValue(code string) (uint64, error) {
	var digits strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, code)
	}
	v, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("batch: numeric value of %q: %w", code, err)
	}
	return v, nil
}
