package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dmtoolbox/inserts-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "card not found",
			expected: "NOT_FOUND: card not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "internal error",
			code:     errors.CodeInternal,
			message:  "storage failed",
			expected: "INTERNAL: storage failed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("wraps external error as internal", func() {
		cause := fmt.Errorf("connection refused")
		err := errors.Wrap(cause, "failed to load card")

		s.Assert().Equal(errors.CodeInternal, err.Code)
		s.Assert().Equal("INTERNAL: failed to load card: connection refused", err.Error())
		s.Assert().True(errors.Is(err, cause))
	})

	s.Run("keeps the code of a wrapped coded error", func() {
		inner := errors.NotFound("card not found")
		err := errors.Wrap(inner, "lookup failed")

		s.Assert().Equal(errors.CodeNotFound, err.Code)
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("nil yields nil", func() {
		s.Assert().Nil(errors.Wrap(nil, "nothing"))
	})
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	cause := fmt.Errorf("bad json")
	err := errors.WrapWithCode(cause, errors.CodeInvalidArgument, "malformed card")

	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().True(errors.Is(err, cause))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("gone")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))

	wrapped := fmt.Errorf("context: %w", errors.AlreadyExists("dup"))
	s.Assert().Equal(errors.CodeAlreadyExists, errors.GetCode(wrapped))
}

func (s *ErrorsTestSuite) TestCodePredicates() {
	s.Assert().True(errors.IsNotFound(errors.NotFoundf("card %q", "abc")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad")))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExists("dup")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("nope")))
	s.Assert().True(errors.IsInternal(errors.Internal("boom")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("down")))

	s.Assert().False(errors.IsNotFound(errors.Internal("boom")))
	s.Assert().False(errors.IsNotFound(nil))
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.InvalidArgument("bad field").
		WithMeta("field", "level").
		WithMeta("value", -3)

	s.Assert().Equal("level", err.Meta["field"])
	s.Assert().Equal(-3, err.Meta["value"])
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	a := errors.NotFound("card 1")
	b := errors.NotFound("card 2")

	s.Assert().True(errors.Is(a, b), "errors with the same code match")
	s.Assert().False(errors.Is(a, errors.Internal("boom")))
}
