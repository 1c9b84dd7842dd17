package binder

import "errors"

var ErrFailedToParsePath = errors.New("failed to parse path parameters")
