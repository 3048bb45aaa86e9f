package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNoActivePick          = errors.New("no active pick")
	ErrReplacementNotReady   = errors.New("replacement levels not computed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
