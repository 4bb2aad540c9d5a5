package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
)

// DumpOutput receives raw http exchanges for offline inspection.
type DumpOutput interface {
	Write(id string, contents string)
}

// dump files are named after the request id, see InstrumentResty
var dumpFileName = regexp.MustCompile(`^[0-9]+\.txt$`)

type FilesystemDump struct {
	directory string
}

// NewFilesystemDump writes each exchange as its own file in `dir`. Dump files
// of an earlier run are removed, anything else in `dir` is left alone.
func NewFilesystemDump(dir string) (FilesystemDump, error) {
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemDump{}, fmt.Errorf("create dump dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return FilesystemDump{}, fmt.Errorf("read dump dir: %w", err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !dumpFileName.MatchString(entry.Name()) {
			continue
		}
		err = os.Remove(filepath.Join(dir, entry.Name()))
		if err != nil {
			return FilesystemDump{}, fmt.Errorf("clear earlier dump: %w", err)
		}
	}

	return FilesystemDump{directory: dir}, nil
}

func (o FilesystemDump) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write http dump", "id", id, "err", err)
	}
}
