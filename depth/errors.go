// SPDX-License-Identifier: MIT

package depth

import "errors"

// ErrFrameAbandoned is returned when the frame context is cancelled before
// every row is computed. The context error is wrapped alongside it.
var ErrFrameAbandoned = errors.New("depth: frame abandoned")
