package manifest

import (
	"strings"

	"github.com/pkg/errors"
)

// A parsed copy step.
type Copy struct {
	Flags   []string // COPY flags passed through as given (e.g., "--chown=app:app").
	From    string   // Stage or named context the sources are read from, empty for the build context.
	Sources []string // Source paths, without the "stage:" prefix.
	Dest    string   // Destination path.
}

// Parses a copy string of the form "[--flag ...] src... dest".
//
// The last token is the destination. Leading tokens starting with "--" are
// flags; every other token is a source. Sources may carry a "stage:" prefix
// naming a stage or named build context, in which case all sources must name
// the same one. The --from flag is rejected, the prefix form replaces it.
func ParseCopy(s string) (Copy, error) {
	fields := strings.Fields(s)

	var c Copy
	i := 0
	for ; i < len(fields) && strings.HasPrefix(fields[i], "--"); i++ {
		if strings.HasPrefix(fields[i], "--from") {
			return Copy{}, errors.Wrapf(ErrInvalidCopy, "%q: use a \"stage:\" source prefix instead of --from", s)
		}
		c.Flags = append(c.Flags, fields[i])
	}

	rest := fields[i:]
	if len(rest) < 2 {
		return Copy{}, errors.Wrapf(ErrInvalidCopy, "expected source and destination, got %q", s)
	}

	c.Dest = rest[len(rest)-1]
	for j, src := range rest[:len(rest)-1] {
		from, path, ok := ParseStageCopy(src)
		if !ok {
			path = src
		}
		if j > 0 && from != c.From {
			return Copy{}, errors.Wrapf(ErrInvalidCopy, "%q: sources read from different stages", s)
		}
		c.From = from
		c.Sources = append(c.Sources, path)
	}

	return c, nil
}

// Parses a cross-stage copy source of the form "stage:path".
//
// Returns the stage name, the path within the stage, and true if the source
// matches the cross-stage format. Returns false if it is a build context
// path.
func ParseStageCopy(src string) (stage, path string, ok bool) {
	i := strings.IndexByte(src, ':')
	if i < 1 {
		return "", "", false
	}

	// A colon after a path separator is not a stage prefix (e.g. "/foo:bar").
	if strings.ContainsRune(src[:i], '/') {
		return "", "", false
	}

	return src[:i], src[i+1:], true
}
