// SPDX-License-Identifier: MIT

// Package degree defines the error values for degree-distribution queries.
package degree

import "errors"

// ErrPercentileRange is returned by Discretize and Normalized when a
// requested percentile is NaN or outside [0, 100].
var ErrPercentileRange = errors.New("degree: percentile outside [0,100]")
