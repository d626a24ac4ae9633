package taxonomy

import "errors"

var (
	// ErrUnknownRank reports a tag or rank label that does not resolve to a
	// rank in the sequence, or a rank successor past the deepest rank.
	ErrUnknownRank = errors.New("unknown rank")

	// ErrInvalidRoot reports index construction over an absent root.
	ErrInvalidRoot = errors.New("invalid root")

	// ErrInvalidArgument reports a contract violation by the caller, such as
	// a lookup with an empty name.
	ErrInvalidArgument = errors.New("invalid argument")
)
