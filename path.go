package fsindex

import (
	"strings"

	"github.com/mwantia/fsindex/namespace"
)

// joinPath builds the full path of a file from its directory and name,
// avoiding a doubled separator when dir already ends with one.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, namespace.Separator) {
		return dir + name
	}

	return dir + namespace.Separator + name
}
