package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-api/internal/errors"
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
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "position (12,-1) is outside 10x10 map",
			expected: "OUT_OF_RANGE: position (12,-1) is outside 10x10 map",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "map dimensions must be positive",
			expected: "INVALID_ARGUMENT: map dimensions must be positive",
		},
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "map not found",
			expected: "NOT_FOUND: map not found",
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

func (s *ErrorsTestSuite) TestCodeHelpers() {
	s.True(errors.IsOutOfRange(errors.OutOfRange("off the map")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgument("bad input")))
	s.True(errors.IsNotFound(errors.NotFound("missing")))
	s.False(errors.IsOutOfRange(errors.NotFound("missing")))

	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.OutOfRange("position (5,5) is outside 3x3 map")
	wrapped := errors.Wrap(base, "failed to read tile")

	s.Equal(errors.CodeOutOfRange, wrapped.Code)
	s.Equal("failed to read tile", wrapped.Message)
	s.True(errors.IsOutOfRange(wrapped))
	s.Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(base, "failed to save map")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "ignored"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "ignored"))
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.OutOfRange("position outside map").
		WithMeta("x", 42).
		WithMeta("y", -1)

	s.Equal(42, err.Meta["x"])
	s.Equal(-1, err.Meta["y"])
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().Build()
	s.NoError(err)

	err = errors.NewValidationBuilder().
		RequiredField("Engine").
		InvalidField("Width", "must be positive").
		Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Engine")
	s.Contains(err.Error(), "Width")
}
