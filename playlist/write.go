package playlist

import (
	"fmt"
	"strings"

	"github.com/m3ugen/m3ugen/filesystem"
)

// Write joins entries with newlines, adds one trailing newline and
// overwrites path. Parent directories are not created. The file is written
// in place: a crash mid-write can leave it truncated, and no backup of the
// previous playlist is kept.
func Write(entries []string, path string) error {
	data := strings.Join(entries, "\n") + "\n"
	if err := filesystem.API().WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	return nil
}
