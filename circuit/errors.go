// SPDX-License-Identifier: MIT

package circuit

import "errors"

// ErrInvalidOp indicates an Op whose gate and qubit fields disagree:
// a one-qubit gate with a control, or a two-qubit gate without one.
var ErrInvalidOp = errors.New("circuit: invalid operation")
