package drawing

import (
	"errors"

	"github.com/user/mosaic/pkg/csscolor"
)

var (
	// ErrAccessDenied is returned when geometry or scale is changed on a
	// surface that was not constructed as resizable or scalable.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidArgument is returned for malformed calls, such as an
	// unsupported drawImage argument count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedFormat is returned for color strings that cannot be
	// resolved.
	ErrUnsupportedFormat = csscolor.ErrUnsupportedFormat
)
