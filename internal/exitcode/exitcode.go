package exitcode

import (
	"errors"
	"strings"
)

const (
	OK         = 0
	Generic    = 1
	Validation = 2
	Git        = 3
	Filesystem = 4
)

type Error struct {
	Code  int
	Cause error
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Cause: err}
}

func Of(err error) int {
	if err == nil {
		return OK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	// Fallback: string-based classification for errors not yet wrapped with typed codes.
	// Each case here is a candidate for future replacement with a typed error.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not a git repository") ||
		strings.Contains(msg, "git checkout") ||
		strings.Contains(msg, "git commit") ||
		strings.Contains(msg, "git branch"):
		return Git
	case strings.Contains(msg, "validation") || strings.Contains(msg, "invalid"):
		return Validation
	case strings.Contains(msg, "permission denied") || strings.Contains(msg, "no space"):
		return Filesystem
	default:
		return Generic
	}
}
