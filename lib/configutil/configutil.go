package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

func unmarshal(ext string, data []byte, out any) error {
	switch strings.ToLower(ext) {
	case "yaml", "yml":
		return yaml.Unmarshal(data, out)
	default:
		return json5.Unmarshal(data, out)
	}
}

// ReadConfig reads a configuration file, `name` should come with a file extension,
// it will automatically be lopped off to produce the other extensions.
// this function will merge the following files, where higher number is more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
//
// `.yaml`/`.yml` files are parsed as YAML, everything else as JSON5.
func ReadConfig[T any](name string) (T, error) {
	var out T
	err := readInto(name, &out)
	return out, err
}

// readInto decodes the files of ReadConfig on top of whatever `out` already
// holds. Keys present in a file always win, even when their value is zero,
// keys absent from both files keep the value of `out`.
func readInto[T any](name string, out *T) error {
	dirname := filepath.Dir(name)
	basename := filepath.Base(name)
	prefixname, ext := splitExt(basename)
	localFilepath := filepath.Join(
		dirname,
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)

	allNotFound := true
	for _, path := range []string{name, localFilepath} {
		contents, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		allNotFound = false
		if len(contents) == 0 {
			continue
		}
		err = unmarshal(ext, contents, out)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if path == localFilepath {
			slog.Debug("merging config with local overrides", "local", localFilepath)
		}
	}

	if allNotFound {
		return os.ErrNotExist
	}
	return nil
}

// ReadRecursively is ReadConfig but it goes up the filesystem from the cwd until
// the root to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var out T
	err := readRecursivelyInto(name, &out)
	return out, err
}

func readRecursivelyInto[T any](name string, out *T) error {
	current, err := os.Getwd()
	if err != nil {
		return err
	}

	for {
		err := readInto(filepath.Join(current, name), out)
		if err == nil || !os.IsNotExist(err) {
			return err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return os.ErrNotExist
		}
		current = parent
	}
}

// ReadOrDefault reads the config at `name` (recursively when `name` is a bare
// file name) on top of `defaults`, a missing file yields `defaults`.
func ReadOrDefault[T any](name string, defaults T) (T, error) {
	out := defaults

	var err error
	if filepath.Base(name) == name {
		err = readRecursivelyInto(name, &out)
	} else {
		err = readInto(name, &out)
	}
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return defaults, err
	}
	return out, nil
}

// Override returns `base` with every non-zero field of `set` applied on top,
// it is meant for command line flags where the zero value means "not given".
func Override[T any](base, set T) (T, error) {
	err := mergo.Merge(&base, set, mergo.WithOverride)
	if err != nil {
		return base, fmt.Errorf("apply overrides: %w", err)
	}
	return base, nil
}
