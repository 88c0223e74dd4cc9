package capture

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/sbekit/compress"
	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/errs"
	"github.com/arloliu/sbekit/format"
	"github.com/arloliu/sbekit/internal/options"
	"github.com/arloliu/sbekit/prim"
)

// Reader replays a journal stream record by record.
type Reader struct {
	r         io.Reader
	engine    endian.EndianEngine
	maxRecord int
	header    [recordHeaderSize]byte
}

// NewReader creates a journal reader. The framing byte order must match the
// writer's; compression is discovered per record.
func NewReader(r io.Reader, opts ...options.Option[*Reader]) (*Reader, error) {
	jr := &Reader{
		r:         r,
		engine:    endian.GetLittleEndianEngine(),
		maxRecord: DefaultMaxRecordSize,
	}
	if err := options.Apply(jr, opts...); err != nil {
		return nil, err
	}

	return jr, nil
}

// WithBigEndianReadFraming reads record headers big-endian.
func WithBigEndianReadFraming() options.Option[*Reader] {
	return options.NoError(func(r *Reader) {
		r.engine = endian.GetBigEndianEngine()
	})
}

// WithReadMaxRecordSize overrides the per-record payload bound. Records
// claiming more are rejected without allocating for them.
func WithReadMaxRecordSize(n int) options.Option[*Reader] {
	return options.New(func(r *Reader) error {
		if n <= 0 {
			return fmt.Errorf("max record size %d: %w", n, errs.ErrInvalidRecord)
		}
		r.maxRecord = n
		return nil
	})
}

// Next returns the next journaled message, decompressed. It reports io.EOF
// at a clean end of stream and io.ErrUnexpectedEOF when the stream stops
// mid-record.
func (r *Reader) Next() ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read record header: %w", err)
	}

	length := prim.GetUint(r.header[:4], 4, r.engine)
	if length > uint64(r.maxRecord) {
		return nil, fmt.Errorf("%d byte record exceeds %d byte cap: %w",
			length, r.maxRecord, errs.ErrRecordTooLarge)
	}
	ctype := format.CompressionType(r.header[4])
	codec, err := compress.GetCodec(ctype)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, int(length))
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return nil, fmt.Errorf("read %d byte record payload: %w", length, err)
	}

	decoded, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress %s record: %w", ctype, err)
	}
	if decoded == nil {
		decoded = []byte{}
	}

	return decoded, nil
}
