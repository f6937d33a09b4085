package build

import "github.com/pkg/errors"

var (
	ErrBuild          = errors.New("build failed")
	ErrCopy           = errors.New("copy failed")
	ErrMissingContext = errors.New("missing build context")
)
