package config

import "errors"

var (
	ErrInvalidStrengthBounds    = errors.New("secondary strength bounds must satisfy 0 <= floor < ceil <= 1")
	ErrInvalidBlendWeight       = errors.New("bias blend weight must lie in [0,1]")
	ErrInvalidSubstitutionDepth = errors.New("substitution depth must be at least 1")
)
