// SPDX-License-Identifier: MIT

package surface

import "errors"

// ErrBadSemiAxis is returned by NewHyperellipsoid for a semi-axis that is not
// a finite, strictly positive number.
var ErrBadSemiAxis = errors.New("surface: semi-axis must be finite and > 0")
