package manifest

import "github.com/pkg/errors"

var (
	ErrInvalidRecipe       = errors.New("invalid recipe")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidCopy         = errors.New("invalid copy")
	ErrUnknownStage        = errors.New("unknown stage")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
