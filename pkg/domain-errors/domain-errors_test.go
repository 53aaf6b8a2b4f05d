package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// These are the error primitives used at every trust boundary; the tests pin
// invariants like "wrapped domain errors preserve the original code" and
// "errors.Is matches by code".
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "user not found"}
		s.Equal("user not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeUpstreamFetch}
		s.Equal("upstream_fetch_failed", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("connection reset")
		err := &Error{Code: CodeUpstreamFetch, Message: "page fetch failed", Err: inner}
		s.Equal(inner, err.Unwrap())
	})

	s.Run("returns nil when no wrapped error", func() {
		err := &Error{Code: CodeNotFound, Message: "not found"}
		s.Nil(err.Unwrap())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeNotFound, Message: "user not found"}
		err2 := &Error{Code: CodeNotFound, Message: "group not found"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeNotFound}
		err2 := &Error{Code: CodeAuthentication}
		s.False(err1.Is(err2))
	})

	s.Run("does not match non-domain errors", func() {
		err1 := &Error{Code: CodeNotFound}
		s.False(err1.Is(errors.New("not found")))
	})

	s.Run("works with errors.Is through chain", func() {
		inner := &Error{Code: CodeUpstreamFetch, Message: "original"}
		wrapped := &Error{Code: CodeInternal, Message: "wrapped", Err: inner}
		s.True(errors.Is(wrapped, &Error{Code: CodeUpstreamFetch}))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		original := New(CodeMissingCredentials, "missing tenant_id")
		wrapped := Wrap(original, CodeInternal, "provider error")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeMissingCredentials, domainErr.Code)
		s.Equal("provider error", domainErr.Message)
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		original := errors.New("token acquisition timed out")
		wrapped := Wrap(original, CodeAuthentication, "failed to create Graph client")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeAuthentication, domainErr.Code)
	})

	s.Run("wrapped error is accessible via errors.Is", func() {
		original := errors.New("root cause")
		wrapped := Wrap(original, CodeUpstreamFetch, "page fetch failed")
		s.True(errors.Is(wrapped, original))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("returns true for matching code", func() {
		s.True(HasCode(New(CodeValidation, "display_name is required"), CodeValidation))
	})

	s.Run("returns false for non-matching code", func() {
		s.False(HasCode(New(CodeValidation, "bad input"), CodeUpstreamFetch))
	})

	s.Run("returns false for non-domain error", func() {
		s.False(HasCode(errors.New("regular error"), CodeNotFound))
	})

	s.Run("finds code through error chain", func() {
		inner := New(CodeNotFound, "original")
		wrapped := Wrap(inner, CodeInternal, "wrapped")
		s.True(HasCode(wrapped, CodeNotFound))
	})

	s.Run("returns false for nil error", func() {
		s.False(HasCode(nil, CodeNotFound))
	})
}
