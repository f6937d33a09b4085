package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	appName = "dockrecipe"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for cached files.
//
//	Linux:   $XDG_CACHE_HOME/dockrecipe or ~/.cache/dockrecipe
//	macOS:   ~/Library/Caches/dockrecipe
func Cache() string {
	return filepath.Join(xdg.CacheHome, appName)
}

// Path to the directory holding rendered Dockerfiles, one subdirectory per
// content digest.
//
//	Linux:   $XDG_CACHE_HOME/dockrecipe/recipes/<digest>
//	macOS:   ~/Library/Caches/dockrecipe/recipes/<digest>
func Recipe(digest string) string {
	return filepath.Join(Cache(), "recipes", digest)
}
