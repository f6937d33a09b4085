package dockerfile

import "github.com/pkg/errors"

var (
	ErrScopeViolation      = errors.New("workdir scope violation")
	ErrFrozen              = errors.New("stage is frozen")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
