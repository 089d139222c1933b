// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// parsePercentiles splits a list such as "0,25,50" or "[0 25 50]".
func parsePercentiles(s string) ([]float64, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: percentile %q: %w", ErrInvalidConfig, f, err)
		}
		out = append(out, p)
	}

	return out, nil
}

func toFloat(x any) (float64, error) {
	f, err := cast.ToFloat64E(x)
	if err != nil {
		return 0, fmt.Errorf("%w: percentile %v: %w", ErrInvalidConfig, x, err)
	}

	return f, nil
}
