// SPDX-License-Identifier: MIT

package fixedpoint

import "errors"

// ErrInvalidSettings is returned by NewSettings when the tolerance is not a
// positive finite number or the iteration budget is not positive.
var ErrInvalidSettings = errors.New("fixedpoint: invalid settings")
