// Package input parses the caller-facing value sources. Errors stay at this
// boundary: malformed input never reaches the heap itself.
package input

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a manual-entry token is not an integer.
var ErrInvalidInput = errors.New("please enter only integers separated by commas")

// ParseList parses a comma separated integer list, ignoring blank tokens
// ("1, 2,, 3," is fine). Any non-integer token fails the whole list.
func ParseList(s string) ([]int64, error) {
	out := make([]int64, 0)

	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, ErrInvalidInput
		}

		out = append(out, v)
	}

	return out, nil
}
