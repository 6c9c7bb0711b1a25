package worlddata

import "errors"

var (
	// ErrNoPlatforms is returned when a source yields nothing to stand on.
	ErrNoPlatforms = errors.New("world has no platforms")
	// ErrUnsupportedSource is returned for sources Fetch cannot read.
	ErrUnsupportedSource = errors.New("unsupported world source")
)
