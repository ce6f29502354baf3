package render

import "errors"

// ErrRendererNotFound is returned when a registry lookup misses.
var ErrRendererNotFound = errors.New("render: renderer not found")
