package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("test-operation", "test message", errors.New("underlying error"))

	assert.Equal(t, ErrorTypeValidation, err.Type())
	assert.Equal(t, "test-operation", err.Operation())
	assert.Equal(t, "test message", err.UserMessage())
	assert.NotNil(t, err.Unwrap())

	expectedError := "test-operation: test message: underlying error"
	assert.Equal(t, expectedError, err.Error())
}

func TestParseError(t *testing.T) {
	err := NewParseError("parse-newick", "/test/tree.nwk", 17, "unbalanced parentheses", nil)

	assert.Equal(t, ErrorTypeParse, err.Type())
	assert.Equal(t, "parse-newick", err.Operation())
	assert.Equal(t, "unbalanced parentheses", err.UserMessage())
	assert.Equal(t, "/test/tree.nwk", err.Path)
	assert.Equal(t, 17, err.Offset)
	assert.Nil(t, err.Unwrap())

	expectedError := "parse-newick: unbalanced parentheses"
	assert.Equal(t, expectedError, err.Error())
}

func TestFormatError(t *testing.T) {
	err := NewFormatError("parse-dialect", 42, "unknown format code 42", nil)

	assert.Equal(t, ErrorTypeFormat, err.Type())
	assert.Equal(t, "parse-dialect", err.Operation())
	assert.Equal(t, 42, err.Dialect)
	assert.Equal(t, 42, err.Context()["dialect"])

	expectedError := "parse-dialect: unknown format code 42"
	assert.Equal(t, expectedError, err.Error())
}

func TestFileSystemError(t *testing.T) {
	err := NewFileSystemError("write-tree", "/test/path", "failed to write file", nil)

	assert.Equal(t, ErrorTypeFileSystem, err.Type())
	assert.Equal(t, "write-tree", err.Operation())
	assert.Equal(t, "failed to write file", err.UserMessage())
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "/test/path", err.Path)

	expectedError := "write-tree: failed to write file"
	assert.Equal(t, expectedError, err.Error())
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("config-load", "invalid yaml format", errors.New("yaml parse error"))

	assert.Equal(t, ErrorTypeValidation, err.Type())
	assert.Equal(t, "config-load", err.Operation())
	assert.Equal(t, "invalid yaml format", err.UserMessage())
	assert.NotNil(t, err.Unwrap())

	expectedError := "config-load: invalid yaml format: yaml parse error"
	assert.Equal(t, expectedError, err.Error())
}

func TestErrorWithoutUnderlying(t *testing.T) {
	err := NewValidationError("test", "message only", nil)

	expectedError := "test: message only"
	assert.Equal(t, expectedError, err.Error())
}

func TestIsRootreeError(t *testing.T) {
	parseErr := NewParseError("test", "", 0, "message", nil)
	regularErr := errors.New("regular error")

	var re RootreeError = parseErr
	assert.Equal(t, ErrorTypeParse, re.Type())
	assert.NotEmpty(t, re.SuggestedActions())

	var target *ParseError
	assert.True(t, errors.As(error(parseErr), &target))
	assert.False(t, errors.As(regularErr, &target))
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "parse", ErrorTypeParse.String())
	assert.Equal(t, "format", ErrorTypeFormat.String())
	assert.Equal(t, "filesystem", ErrorTypeFileSystem.String())
	assert.Equal(t, "internal", ErrorTypeInternal.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}
