package docker

import "github.com/pkg/errors"

var (
	ErrCommandFailed    = errors.New("docker command failed")
	ErrInvalidPlatform  = errors.New("invalid platform")
	ErrInvalidReference = errors.New("invalid image reference")
)
