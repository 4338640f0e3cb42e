package core

import "errors"

// ErrNoTID is the sentinel returned by Create on resource exhaustion —
// the Go analogue of pintos's TID_ERROR. No partial state is left behind:
// the page allocation failed before any TCB was built.
var ErrNoTID = errors.New("core: no tid available (page allocation failed)")
