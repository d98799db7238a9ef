package lib

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownSeries   = fmt.Errorf("%w: unknown resistor series", ErrInvalidArgument)
	ErrNotFound        = errors.New("not found")
	ErrSchemaTooNew    = errors.New("library schema is newer than this build")
)
