// Package compress provides the block codecs capture journals store encoded
// message payloads with. Payloads are complete, already-encoded messages,
// typically a few hundred bytes to a few kilobytes, compressed one record at
// a time.
package compress

import (
	"fmt"

	"github.com/arloliu/sbekit/errs"
	"github.com/arloliu/sbekit/format"
)

// Compressor compresses one payload. The returned slice is newly allocated
// and owned by the caller; the input is not modified. Implementations may
// reuse internal buffers and must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor. The input must have been produced by the
// same algorithm; corrupted or mismatched data is reported as an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions, for implementations that share state
// between them.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compression type %s: %w", compressionType, errs.ErrUnknownCompression)
}
