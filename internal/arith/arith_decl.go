// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// WARNING: This file uses //go:linkname to access unexported functions from
// math/big. This technique is fragile:
//
//  1. These internal functions are not part of Go's public API and may change
//     or be removed in future Go versions without notice.
//  2. The function signatures must match exactly; any mismatch can cause
//     runtime panics or memory corruption.
//
// Only the two vector kernels whose signatures math/big has pledged to keep
// stable (go.dev/issue/67401) are linked. If this package fails to compile
// after a Go upgrade, replace them with the loops in addVVg and subVVg.

package arith

import (
	_ "unsafe" // Required for go:linkname

	"github.com/agbru/wideint/internal/register"
)

// Word is the engine's machine word.
type Word = register.Word

// addVV computes z = x + y element-wise and returns the carry.
// z may alias x or y exactly.
//
//go:linkname addVV math/big.addVV
func addVV(z, x, y []Word) (c Word)

// subVV computes z = x - y element-wise and returns the borrow.
// z may alias x or y exactly.
//
//go:linkname subVV math/big.subVV
func subVV(z, x, y []Word) (c Word)
