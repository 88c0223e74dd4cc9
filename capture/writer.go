// Package capture journals encoded messages. A journal is a flat stream of
// records, each a complete encoded message compressed on its own:
//
//	| payload length (uint32) | compression (uint8) | payload |
//
// The length counts the stored, possibly compressed payload. Records carry
// their compression type individually, so one journal can mix algorithms and
// readers need no out-of-band configuration beyond the byte order.
package capture

import (
	"fmt"
	"io"

	"github.com/arloliu/sbekit/compress"
	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/errs"
	"github.com/arloliu/sbekit/format"
	"github.com/arloliu/sbekit/internal/options"
	"github.com/arloliu/sbekit/internal/pool"
	"github.com/arloliu/sbekit/prim"
	"github.com/arloliu/sbekit/view"
)

const (
	recordHeaderSize = 5

	// DefaultMaxRecordSize bounds a single record's payload.
	DefaultMaxRecordSize = 64 * 1024 * 1024
)

// Writer appends records to a journal stream.
type Writer struct {
	w         io.Writer
	codec     compress.Codec
	ctype     format.CompressionType
	engine    endian.EndianEngine
	maxRecord int
	scratch   [recordHeaderSize]byte
}

// NewWriter creates a journal writer. By default records are stored
// uncompressed in little-endian framing.
func NewWriter(w io.Writer, opts ...options.Option[*Writer]) (*Writer, error) {
	jw := &Writer{
		w:         w,
		ctype:     format.CompressionNone,
		engine:    endian.GetLittleEndianEngine(),
		maxRecord: DefaultMaxRecordSize,
	}
	if err := options.Apply(jw, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(jw.ctype)
	if err != nil {
		return nil, err
	}
	jw.codec = codec

	return jw, nil
}

// WithCompression selects the compression applied to subsequent records.
func WithCompression(ct format.CompressionType) options.Option[*Writer] {
	return options.New(func(w *Writer) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		w.ctype = ct
		return nil
	})
}

// WithBigEndianFraming stores record headers big-endian.
func WithBigEndianFraming() options.Option[*Writer] {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetBigEndianEngine()
	})
}

// WithMaxRecordSize overrides the per-record payload bound.
func WithMaxRecordSize(n int) options.Option[*Writer] {
	return options.New(func(w *Writer) error {
		if n <= 0 {
			return fmt.Errorf("max record size %d: %w", n, errs.ErrInvalidRecord)
		}
		w.maxRecord = n
		return nil
	})
}

// WriteMessage journals one encoded message.
func (w *Writer) WriteMessage(encoded []byte) error {
	if len(encoded) == 0 {
		return fmt.Errorf("empty message: %w", errs.ErrInvalidRecord)
	}
	if len(encoded) > w.maxRecord {
		return fmt.Errorf("%d byte message exceeds %d byte cap: %w",
			len(encoded), w.maxRecord, errs.ErrRecordTooLarge)
	}

	payload, err := w.codec.Compress(encoded)
	if err != nil {
		return fmt.Errorf("compress record: %w", err)
	}

	prim.PutUint(w.scratch[:4], 4, w.engine, uint64(len(payload)))
	w.scratch[4] = byte(w.ctype)

	// assemble the record in one pooled buffer so the stream sees a single
	// write per record
	record := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(record)
	record.Write(w.scratch[:])
	record.Write(payload)

	if _, err := w.w.Write(record.Bytes()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// WriteChecked validates m against the claimed byte length with
// view.SizeBytesChecked and journals exactly its encoded bytes. A message
// whose declared structure does not fit the claim is rejected with
// errs.ErrInvalidMessage, before any buffer access beyond the claim.
func (w *Writer) WriteChecked(m view.MessageView, claim int) error {
	res := view.SizeBytesChecked(m, claim)
	if !res.Valid {
		return fmt.Errorf("message does not fit %d claimed bytes: %w", claim, errs.ErrInvalidMessage)
	}

	return w.WriteMessage(m.Buffer()[m.Addr() : m.Addr()+res.Size])
}
