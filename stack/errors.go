package stack

import "errors"

// ErrEmpty indicates Pop, Top or TopRef was called on an empty stack.
var ErrEmpty = errors.New("stack: empty")
