// Package errs defines the sentinel errors shared across sbekit packages.
//
// All errors are created with errors.New and are safe to compare with
// errors.Is after wrapping with fmt.Errorf("...: %w", err).
package errs

import "errors"

var (
	// ErrNilBuffer indicates a view or cursor was created over a nil buffer.
	ErrNilBuffer = errors.New("buffer is nil")

	// ErrBufferTooSmall indicates the buffer cannot hold the structure it claims to contain.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidMessage indicates an encoded message failed the checked-size validation.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrUnknownTemplate indicates a message header references an unregistered template.
	ErrUnknownTemplate = errors.New("unknown message template")

	// ErrDuplicateTemplate indicates a template was registered twice in the same registry.
	ErrDuplicateTemplate = errors.New("duplicate message template")

	// ErrSchemaMismatch indicates a message header carries an unexpected schema id.
	ErrSchemaMismatch = errors.New("schema id mismatch")

	// ErrHashCollision indicates two distinct names produced the same name hash.
	ErrHashCollision = errors.New("name hash collision")

	// ErrInvalidRecord indicates a capture record is truncated or carries a bad length prefix.
	ErrInvalidRecord = errors.New("invalid capture record")

	// ErrRecordTooLarge indicates a capture record length prefix exceeds the configured limit.
	ErrRecordTooLarge = errors.New("capture record too large")

	// ErrUnknownCompression indicates a capture record uses an unsupported compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
)
