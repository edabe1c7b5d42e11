package soft

import (
	"net/url"
	"strconv"

	"github.com/stretchr/testify/assert"
)

// URLAssert checks a parsed URL. Every check fails on a nil URL.
type URLAssert struct {
	base
	actual *url.URL
}

// As sets a description shown with any failure of this wrapper.
func (a *URLAssert) As(format string, args ...any) *URLAssert {
	a.describe(format, args...)
	return a
}

// HasScheme checks the URL scheme.
func (a *URLAssert) HasScheme(scheme string) *URLAssert {
	a.part("HasScheme", scheme, func(u *url.URL) string { return u.Scheme })
	return a
}

// HasHost compares the host name without port.
func (a *URLAssert) HasHost(host string) *URLAssert {
	a.part("HasHost", host, (*url.URL).Hostname)
	return a
}

// HasPort checks the explicit port of the URL.
func (a *URLAssert) HasPort(port int) *URLAssert {
	a.part("HasPort", strconv.Itoa(port), (*url.URL).Port)
	return a
}

// HasPath checks the decoded path.
func (a *URLAssert) HasPath(path string) *URLAssert {
	a.part("HasPath", path, func(u *url.URL) string { return u.Path })
	return a
}

// HasFragment checks the fragment after '#'.
func (a *URLAssert) HasFragment(fragment string) *URLAssert {
	a.part("HasFragment", fragment, func(u *url.URL) string { return u.Fragment })
	return a
}

// HasUser checks the user name in the userinfo.
func (a *URLAssert) HasUser(user string) *URLAssert {
	a.part("HasUser", user, func(u *url.URL) string { return u.User.Username() })
	return a
}

// HasQueryParam checks that name is set to value in the query.
func (a *URLAssert) HasQueryParam(name, value string) *URLAssert {
	if !a.notNil("HasQueryParam") {
		return a
	}
	values, ok := a.actual.Query()[name]
	a.check("HasQueryParam", func(t assert.TestingT) bool {
		if !ok {
			return assert.Fail(t, "query parameter "+strconv.Quote(name)+" is missing", a.msgAndArgs()...)
		}
		return assert.Contains(t, values, value, a.msgAndArgs()...)
	})
	return a
}

// HasNoQuery checks that the URL has no query string.
func (a *URLAssert) HasNoQuery() *URLAssert {
	a.part("HasNoQuery", "", func(u *url.URL) string { return u.RawQuery })
	return a
}

func (a *URLAssert) part(check, expected string, get func(*url.URL) string) {
	if !a.notNil(check) {
		return
	}
	a.check(check, func(t assert.TestingT) bool {
		return assert.Equal(t, expected, get(a.actual), a.msgAndArgs()...)
	})
}

func (a *URLAssert) notNil(check string) bool {
	if a.actual != nil {
		return true
	}
	a.expect(check, false, "expected a URL but was nil")
	return false
}
