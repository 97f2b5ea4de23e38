package token

import "errors"

// Schema authoring errors. All of them halt the build.
var (
	ErrDuplicateTokenPath    = errors.New("duplicate token path")
	ErrInvalidTokenPath      = errors.New("invalid token path")
	ErrIncompleteToken       = errors.New("incomplete token")
	ErrCyclicTokenReference  = errors.New("cyclic token reference")
	ErrUnknownColorReference = errors.New("unknown color reference")
	ErrUnknownTokenReference = errors.New("unknown token reference")
)
