package handler

import "errors"

// ErrNilAppOrConfig is returned by Init if app or cfg is nil.
var ErrNilAppOrConfig = errors.New("app or cfg is nil")
