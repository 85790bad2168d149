package targets

import "errors"

var (
	// ErrDegenerateHorizon is returned when the target year is not after the base year.
	ErrDegenerateHorizon = errors.New("target year must be after base year")

	// ErrInvalidPolicy is returned for out-of-range percentages or negative emissions.
	ErrInvalidPolicy = errors.New("invalid reduction policy")

	// ErrUnknownFramework is returned by ParseFramework.
	ErrUnknownFramework = errors.New("unknown target framework")

	// ErrMilestoneMismatch is returned when a preset's milestone percentage is
	// applied to a year other than MilestoneYear.
	ErrMilestoneMismatch = errors.New("framework preset applies to the milestone year only")
)
