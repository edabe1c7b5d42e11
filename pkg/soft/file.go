package soft

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/assert"
)

// FileAssert checks a file system path.
type FileAssert struct {
	base
	path string
}

// As sets a description shown with any failure of this wrapper.
func (a *FileAssert) As(format string, args ...any) *FileAssert {
	a.describe(format, args...)
	return a
}

// Exists checks that the path exists.
func (a *FileAssert) Exists() *FileAssert {
	_, err := os.Stat(a.path)
	a.expect("Exists", err == nil, "expected %s to exist: %v", a.path, err)
	return a
}

// DoesNotExist checks that nothing exists at the path.
func (a *FileAssert) DoesNotExist() *FileAssert {
	a.check("DoesNotExist", func(t assert.TestingT) bool {
		return assert.NoFileExists(t, a.path, a.msgAndArgs()...) &&
			assert.NoDirExists(t, a.path, a.msgAndArgs()...)
	})
	return a
}

// IsFile checks that path exists and is not a directory.
func (a *FileAssert) IsFile() *FileAssert {
	a.check("IsFile", func(t assert.TestingT) bool {
		return assert.FileExists(t, a.path, a.msgAndArgs()...)
	})
	return a
}

// IsDirectory checks that the path is a directory.
func (a *FileAssert) IsDirectory() *FileAssert {
	a.check("IsDirectory", func(t assert.TestingT) bool {
		return assert.DirExists(t, a.path, a.msgAndArgs()...)
	})
	return a
}

// HasContent checks that the file holds exactly expected.
func (a *FileAssert) HasContent(expected string) *FileAssert {
	data, err := os.ReadFile(a.path)
	if err != nil {
		a.expect("HasContent", false, "read %s: %v", a.path, err)
		return a
	}
	a.check("HasContent", func(t assert.TestingT) bool {
		return assert.Equal(t, expected, string(data), a.msgAndArgs()...)
	})
	return a
}

// HasExtension compares without the leading dot, e.g. "json".
func (a *FileAssert) HasExtension(ext string) *FileAssert {
	got := filepath.Ext(a.path)
	if got != "" {
		got = got[1:]
	}
	a.expect("HasExtension", got == ext,
		"expected %s to have extension %q but was %q", a.path, ext, got)
	return a
}

// HasName checks the last element of the path.
func (a *FileAssert) HasName(name string) *FileAssert {
	got := filepath.Base(a.path)
	a.expect("HasName", got == name,
		"expected %s to have name %q but was %q", a.path, name, got)
	return a
}
