package dlist

import "errors"

// Bad-argument errors. The call changes nothing.
var (
	// ErrInvalidArgument is returned for malformed geometry: too few
	// points, non-positive sizes, empty strings or mismatched rasters.
	ErrInvalidArgument = errors.New("dlist: invalid argument")

	// ErrNoFrame is returned when a frame name or number is unknown.
	ErrNoFrame = errors.New("dlist: no such frame")

	// ErrFrameExists is returned by CreateFrame for a duplicate name.
	ErrFrameExists = errors.New("dlist: frame already exists")

	// ErrNoSurface is returned when a surface number is unknown.
	ErrNoSurface = errors.New("dlist: no such surface")

	// ErrNoPrimitive is returned when a primitive id is unknown or deleted.
	ErrNoPrimitive = errors.New("dlist: no such primitive")
)

// Allocation and precondition errors.
var (
	// ErrCapacity is returned when a primitive store is full.
	ErrCapacity = errors.New("dlist: primitive capacity exceeded")

	// ErrNotRescaleable is returned when rescaling a fixed frame.
	ErrNotRescaleable = errors.New("dlist: frame is not rescaleable")

	// ErrZoomLimit is returned when a rescale would shrink a frame below
	// 1/200000 of its defined extent.
	ErrZoomLimit = errors.New("dlist: zoom limit reached")

	// ErrNotIndexed is returned for frames that carry no spatial index.
	ErrNotIndexed = errors.New("dlist: frame has no spatial index")
)

// Status maps an error onto the small integer status used by hosts that
// speak the classic display list protocol: 1 for success, 0 for a bad
// argument and -1 for allocation or precondition failures.
func Status(err error) int {
	switch {
	case err == nil:
		return 1
	case errors.Is(err, ErrCapacity),
		errors.Is(err, ErrNotRescaleable),
		errors.Is(err, ErrZoomLimit),
		errors.Is(err, ErrNotIndexed):
		return -1
	}
	return 0
}
