package types

import "fmt"

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeParse
	ErrorTypeFormat
	ErrorTypeFileSystem
	ErrorTypeInternal
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeParse:
		return "parse"
	case ErrorTypeFormat:
		return "format"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// RootreeError is the base interface for all rootree errors
type RootreeError interface {
	error
	Type() ErrorType
	Operation() string
	Context() map[string]interface{}
	Recoverable() bool
	SuggestedActions() []string
	UserMessage() string
}

// BaseError provides a base implementation of RootreeError
type BaseError struct {
	errType          ErrorType
	operation        string
	message          string
	cause            error
	context          map[string]interface{}
	recoverable      bool
	suggestedActions []string
}

func (be *BaseError) Error() string {
	if be.cause != nil {
		return fmt.Sprintf("%s: %s: %v", be.operation, be.message, be.cause)
	}
	return fmt.Sprintf("%s: %s", be.operation, be.message)
}

func (be *BaseError) Type() ErrorType                 { return be.errType }
func (be *BaseError) Operation() string               { return be.operation }
func (be *BaseError) Context() map[string]interface{} { return be.context }
func (be *BaseError) Recoverable() bool               { return be.recoverable }
func (be *BaseError) SuggestedActions() []string      { return be.suggestedActions }
func (be *BaseError) UserMessage() string             { return be.message }
func (be *BaseError) Unwrap() error                   { return be.cause }

// Specific error types

// ValidationError represents validation failures
type ValidationError struct {
	*BaseError
}

func NewValidationError(operation, message string, cause error) *ValidationError {
	return &ValidationError{
		BaseError: &BaseError{
			errType:     ErrorTypeValidation,
			operation:   operation,
			message:     message,
			cause:       cause,
			recoverable: false,
			suggestedActions: []string{
				"Check your command arguments and try again",
				"Run 'rootree --help' for usage information",
			},
		},
	}
}

// ParseError represents a malformed tree file
type ParseError struct {
	*BaseError
	Path   string
	Offset int
}

func NewParseError(operation, path string, offset int, message string, cause error) *ParseError {
	return &ParseError{
		BaseError: &BaseError{
			errType:   ErrorTypeParse,
			operation: operation,
			message:   message,
			cause:     cause,
			context: map[string]interface{}{
				"path":   path,
				"offset": offset,
			},
			recoverable: false,
			suggestedActions: []string{
				"Verify the input file contains a Newick tree",
				"Check that the selected format code matches the file contents",
			},
		},
		Path:   path,
		Offset: offset,
	}
}

// FormatError represents a dialect violation (wrong or unsupported format code)
type FormatError struct {
	*BaseError
	Dialect int
}

func NewFormatError(operation string, dialect int, message string, cause error) *FormatError {
	return &FormatError{
		BaseError: &BaseError{
			errType:   ErrorTypeFormat,
			operation: operation,
			message:   message,
			cause:     cause,
			context: map[string]interface{}{
				"dialect": dialect,
			},
			recoverable: false,
			suggestedActions: []string{
				"Use one of the supported format codes (0-9, 100)",
				"Try the flexible formats 0 or 1 when unsure",
			},
		},
		Dialect: dialect,
	}
}

// FileSystemError represents filesystem operation failures
type FileSystemError struct {
	*BaseError
	Path string
}

func NewFileSystemError(operation, path, message string, cause error) *FileSystemError {
	return &FileSystemError{
		BaseError: &BaseError{
			errType:   ErrorTypeFileSystem,
			operation: operation,
			message:   message,
			cause:     cause,
			context: map[string]interface{}{
				"path": path,
			},
			recoverable: true,
			suggestedActions: []string{
				"Check file permissions",
				"Verify the path exists and is readable",
				"Ensure the destination directory exists",
			},
		},
		Path: path,
	}
}

// ConfigError represents configuration-related failures
type ConfigError struct {
	*BaseError
}

func NewConfigError(operation, message string, cause error) *ConfigError {
	return &ConfigError{
		BaseError: &BaseError{
			errType:     ErrorTypeValidation,
			operation:   operation,
			message:     message,
			cause:       cause,
			recoverable: false,
			suggestedActions: []string{
				"Check configuration file syntax",
				"Verify configuration file permissions",
				"Run 'rootree config global' to create a default config",
			},
		},
	}
}
