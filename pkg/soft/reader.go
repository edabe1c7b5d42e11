package soft

import (
	"bytes"
	"io"
	"sync"

	"github.com/stretchr/testify/assert"
)

// ReaderAssert checks the content of a stream. The reader is read
// to the end once, on the first content check.
type ReaderAssert struct {
	base
	reader io.Reader

	once    sync.Once
	content []byte
	err     error
}

// As sets a description shown with any failure of this wrapper.
func (a *ReaderAssert) As(format string, args ...any) *ReaderAssert {
	a.describe(format, args...)
	return a
}

// HasContent checks that reading to EOF yields expected.
func (a *ReaderAssert) HasContent(expected string) *ReaderAssert {
	if data, ok := a.read("HasContent"); ok {
		a.check("HasContent", func(t assert.TestingT) bool {
			return assert.Equal(t, expected, string(data), a.msgAndArgs()...)
		})
	}
	return a
}

// HasSameContentAs reads other to the end and compares.
func (a *ReaderAssert) HasSameContentAs(other io.Reader) *ReaderAssert {
	data, ok := a.read("HasSameContentAs")
	if !ok {
		return a
	}
	if other == nil {
		a.expect("HasSameContentAs", false, "expected reader to compare against but was nil")
		return a
	}
	want, err := io.ReadAll(other)
	if err != nil {
		a.expect("HasSameContentAs", false, "read expected content: %v", err)
		return a
	}
	a.expect("HasSameContentAs", bytes.Equal(want, data),
		"content differs: expected %q, got %q", want, data)
	return a
}

// IsEmpty checks that the reader yields no bytes.
func (a *ReaderAssert) IsEmpty() *ReaderAssert {
	if data, ok := a.read("IsEmpty"); ok {
		a.check("IsEmpty", func(t assert.TestingT) bool {
			return assert.Empty(t, data, a.msgAndArgs()...)
		})
	}
	return a
}

func (a *ReaderAssert) read(check string) ([]byte, bool) {
	if a.reader == nil || isNilPointer(a.reader) {
		a.expect(check, false, "expected a reader but was nil")
		return nil, false
	}
	a.once.Do(func() {
		a.content, a.err = io.ReadAll(a.reader)
	})
	if a.err != nil {
		a.expect(check, false, "read content: %v", a.err)
		return nil, false
	}
	return a.content, true
}
