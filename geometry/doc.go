// SPDX-License-Identifier: MIT

// Package geometry holds the two 3-D value types the renderer moves around:
// Transform (a pose: position plus unit direction) and Ray (origin plus
// direction of any non-zero length).
//
// Both are validated at construction and immutable afterwards; every
// accessor returns a copy of the underlying vectors.
package geometry
