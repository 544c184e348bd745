// SPDX-License-Identifier: MIT

package scaling

import (
	"errors"
	"fmt"
)

// ErrBadDDOF indicates a delta degrees of freedom other than 0 or 1.
var ErrBadDDOF = errors.New("scaling: ddof must be 0 or 1")

// scalingErrorf wraps err with an operation tag, preserving sentinels via %w.
func scalingErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
