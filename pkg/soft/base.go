package soft

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"digital.vasic.softassert/pkg/collector"
)

// Assert is implemented by every wrapper returned from a Then
// function.
type Assert interface {
	// Kind reports which wrapper variant this is.
	Kind() Kind
	// Actual returns the value under test.
	Actual() any
	// Description returns the text set with As, if any.
	Description() string
}

// base is embedded in every wrapper. It binds the value under test
// to the SoftAssertions that created it.
type base struct {
	soft        *SoftAssertions
	kind        Kind
	actual      any
	description string
}

func (b *base) Kind() Kind          { return b.kind }
func (b *base) Actual() any         { return b.actual }
func (b *base) Description() string { return b.description }

func (b *base) describe(format string, args ...any) {
	if len(args) > 0 {
		b.description = fmt.Sprintf(format, args...)
		return
	}
	b.description = format
}

func (b *base) msgAndArgs() []any {
	if b.description == "" {
		return nil
	}
	return []any{b.description}
}

// check runs one assertion against a recorder so that a failure
// lands in the collector instead of stopping the caller.
func (b *base) check(name string, fn func(t assert.TestingT) bool) bool {
	r := &recorder{base: b, check: name}
	ok := fn(r)
	b.soft.observe(b.kind, name, ok)
	return ok
}

// expect records a failure with the formatted message unless ok.
func (b *base) expect(name string, ok bool, format string, args ...any) bool {
	return b.check(name, func(t assert.TestingT) bool {
		if ok {
			return true
		}
		return assert.Fail(t, fmt.Sprintf(format, args...), b.msgAndArgs()...)
	})
}

// recorder satisfies assert.TestingT. testify reports a failed
// assertion through Errorf, which we turn into a collected failure.
type recorder struct {
	base  *base
	check string
}

func (r *recorder) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.base.soft.record(collector.Failure{
		Kind:        r.base.kind.String(),
		Check:       r.check,
		Description: r.base.description,
		Summary:     collector.Summarize(msg),
		Message:     msg,
	})
}

func (r *recorder) Helper() {}
