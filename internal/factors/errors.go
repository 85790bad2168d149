package factors

import "errors"

// ErrUnknownCategory is returned when a category is not in the factor table.
var ErrUnknownCategory = errors.New("unknown emission category")

// ErrUnknownRegion is returned by ParseRegion for unrecognized grid regions.
var ErrUnknownRegion = errors.New("unknown grid region")
