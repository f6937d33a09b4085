package dockerfile

import (
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"

	"github.com/cruciblehq/dockrecipe/internal/paths"
)

// File name the build tool expects inside a build context.
const Name = "Dockerfile"

// Describes where the recipe for an image comes from.
//
// The set of implementations is closed: [Text] carries a rendered Dockerfile,
// and [Extract] marks a recipe that is taken from an existing image instead
// of being generated.
type Recipe interface {
	recipe()
}

// A rendered Dockerfile.
type Text struct {
	Dockerfile string `json:"dockerfile" yaml:"dockerfile"` // Rendered Dockerfile text.
}

// Placeholder for a recipe extracted from an existing image.
type Extract struct{}

func (Text) recipe()    {}
func (Extract) recipe() {}

// Builds a [File] with fn and renders it.
func Build(fn func(f *File)) Text {
	f := New()
	fn(f)
	return f.Text()
}

// Renders a single-stage Dockerfile based on OpenJDK.
func OpenJDKFile(version string, fn func(s *Stage)) Text {
	return Build(func(f *File) {
		f.AddStage(OpenJDK(version).Image(), fn)
	})
}

// Returns the content digest of a rendered Dockerfile.
//
// The digest covers the exact bytes written by [Write], so two recipes share
// a digest only if their Dockerfiles are identical.
func Digest(t Text) digest.Digest {
	return digest.FromString(contents(t))
}

// Writes the recipe to a file named [Name] inside dir and returns its path.
//
// The directory is created if needed. The text is written verbatim followed
// by a single newline.
func Write(dir string, t Text) (string, error) {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return "", errors.Wrap(ErrFileSystemOperation, err.Error())
	}

	path := filepath.Join(dir, Name)
	if err := os.WriteFile(path, []byte(contents(t)), paths.DefaultFileMode); err != nil {
		return "", errors.Wrap(ErrFileSystemOperation, err.Error())
	}

	return path, nil
}

// Returns the bytes of the Dockerfile as written to disk.
func contents(t Text) string {
	return t.Dockerfile + "\n"
}
