package provision

import (
	"os"
	"time"
)

// System abstracts filesystem and clock operations needed by the installer.
// This interface is intentionally package-local to enable parallel-safe unit
// tests without shared global state. Other packages define their own seams
// (function vars) specific to their needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Rename(oldpath string, newpath string) error
	RemoveAll(path string) error
	Now() time.Time
}

// RealSystem implements System using the OS filesystem and wall clock.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Rename renames (moves) oldpath to newpath.
func (RealSystem) Rename(oldpath string, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Now returns the current wall-clock time.
func (RealSystem) Now() time.Time {
	return time.Now()
}
