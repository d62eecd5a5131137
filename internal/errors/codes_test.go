package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Validation General", code: ValidationGeneral, expected: "Validation failed"},
		{name: "Invalid Format", code: ValidationInvalidFormat, expected: "Invalid field format"},
		{name: "Database Error", code: SystemDatabaseError, expected: "Database connection error"},
		{name: "Directory Unavailable", code: DirectoryUnavailable, expected: "Storefront backend is unavailable"},
		{name: "Unknown Region", code: ConsoleUnknownRegion, expected: "Unknown page region"},
		{name: "System Internal Error", code: SystemInternalError, expected: "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range []ErrorCode{
		ValidationGeneral, ValidationInvalidFormat, DirectoryUnavailable,
		ConsoleUnknownRegion, SystemNotFound, SystemRateLimitExceeded,
	} {
		s.True(IsValidErrorCode(code), string(code))
	}

	s.False(IsValidErrorCode("AUTH_001"))
	s.False(IsValidErrorCode("PURCHASE_001"))
	s.False(IsValidErrorCode(""))
}
