// SPDX-License-Identifier: MIT

package numeric

import "errors"

// ErrLengthMismatch is returned by pairwise reductions when the two input
// sequences have different lengths.
var ErrLengthMismatch = errors.New("numeric: sequences differ in length")
