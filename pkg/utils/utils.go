package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// FileExists returns true if the given path exists and is a file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists returns true if the given path exists and is a directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MakeFolder creates a directory (and any parents) if it doesn't exist
func MakeFolder(path string) error {
	return os.MkdirAll(path, 0755)
}

// MakeFile creates an empty file at path if it doesn't exist already.
// Existing files are left untouched, so the call is safe to repeat.
func MakeFile(path string) error {
	if FileExists(path) {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// WriteFile replaces the content of an existing file. The file must have
// been created beforehand (normally by the files step); writing into a
// missing file is a caller error and surfaces as a not-found error.
func WriteFile(path, content string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// JoinPath is a convenience wrapper around filepath.Join
func JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}

// Platform returns the normalized host operating system identifier
// ("linux", "darwin", "windows", ...).
func Platform() string {
	return runtime.GOOS
}

// VenvPython returns the invocation prefix for the project virtualenv's
// interpreter, e.g. ".venv/bin/python -m". Commands built on top of it run
// tools installed inside the venv rather than whatever is on PATH.
func VenvPython() string {
	return venvPythonFor(Platform())
}

func venvPythonFor(platform string) string {
	if platform == "windows" {
		return `.venv\Scripts\python.exe -m`
	}
	// Every POSIX system (linux, darwin, *bsd) uses the bin/ layout.
	return ".venv/bin/python -m"
}

// ExpandPath expands a leading ~ and any environment variables in path.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				return home
			}
			if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
				return filepath.Join(home, path[2:])
			}
		}
	}
	return os.ExpandEnv(path)
}

// ValidateParentDir checks that path exists and is a directory, returning
// the expanded form.
func ValidateParentDir(path string) (string, error) {
	expanded := ExpandPath(path)
	info, err := os.Stat(expanded)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("directory does not exist: %s", expanded)
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", expanded)
	}
	return expanded, nil
}
