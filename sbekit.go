// Package sbekit provides the runtime substrate for fixed-layout,
// zero-copy binary messages: the view, cursor and validation machinery that
// generated codec types build on.
//
// Messages live in caller-held byte buffers. All views are thin, non-owning
// windows over those buffers; accessing a field decodes it in place, writing
// one encodes it in place, and nothing is ever copied behind the caller's
// back.
//
// # Package Structure
//
//   - view: buffer ranges, message/group/entry/composite view bases, static
//     and dynamic array views, the cursor with its access modes, visitors
//     and checked-size validation
//   - value: required/optional field wrappers, bitsets and enum helpers
//   - prim: bounds-unaware primitive codec for the scalar wire types
//   - endian: byte order engines shared by all encode and decode paths
//   - schema: registries that dispatch raw buffers to message descriptors
//   - capture: journaling of encoded messages with per-record compression
//   - compress: the block codecs capture journals use
//   - errs: sentinel errors shared across packages
//   - fault: the handler for out-of-contract access
//
// # Basic Usage
//
// Decoding with a cursor:
//
//	msg := myschema.MakeQuote(buf)
//	c := view.InitCursor(msg)
//	id := msg.ID(c, view.ModeDefault)
//	for _, leg := range msg.Legs(c, view.ModeDefault).CursorEntries(c) {
//	    fmt.Println(leg.LegID(c, view.ModeDefault))
//	}
//
// Validating untrusted input before decoding:
//
//	size, err := sbekit.Validate(msg, len(buf))
//	if err != nil {
//	    return err
//	}
//
// This package provides top-level wrappers for the most common entry points;
// the subpackages carry the full API.
package sbekit

import (
	"fmt"

	"github.com/arloliu/sbekit/errs"
	"github.com/arloliu/sbekit/internal/hash"
	"github.com/arloliu/sbekit/view"
)

// Validate checks that m's declared structure fits within claim bytes and
// returns its exact encoded size. Buffers from untrusted sources go through
// it before any other access; a message that does not fit is reported as
// errs.ErrInvalidMessage instead of faulting mid-decode.
func Validate(m view.MessageView, claim int) (int, error) {
	res := view.SizeBytesChecked(m, claim)
	if !res.Valid {
		return 0, fmt.Errorf("message does not fit %d claimed bytes: %w", claim, errs.ErrInvalidMessage)
	}

	return res.Size, nil
}

// NameID computes the 64-bit hash schema registries index message names by.
func NameID(name string) uint64 {
	return hash.ID(name)
}
