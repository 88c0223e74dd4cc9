// Package schema maps the identifiers carried in message headers to message
// descriptors, so ingestion paths can dispatch raw buffers to the right
// generated view without decoding anything but the header.
package schema

import (
	"fmt"

	"github.com/arloliu/sbekit/endian"
	"github.com/arloliu/sbekit/errs"
	"github.com/arloliu/sbekit/internal/collision"
	"github.com/arloliu/sbekit/internal/hash"
	"github.com/arloliu/sbekit/prim"
	"github.com/arloliu/sbekit/view"
)

// Descriptor identifies one message type of a schema.
type Descriptor struct {
	Name       string
	TemplateID uint64
	SchemaID   uint64
	Version    uint64
}

// NameHash returns the 64-bit hash registries index descriptor names by.
func NameHash(name string) uint64 {
	return hash.ID(name)
}

// Registry holds the descriptors of one schema, indexed by template id and
// by name hash. All messages in a registry share the schema's header layout
// and byte order. Registries are built once at startup and are safe for
// concurrent lookups afterwards.
type Registry struct {
	header     view.HeaderLayout
	engine     endian.EndianEngine
	schemaID   uint64
	byTemplate map[uint64]*Descriptor
	byName     map[uint64]*Descriptor
	names      *collision.Tracker
}

// NewRegistry creates an empty registry for the schema identified by
// schemaID, whose messages carry the given header layout and byte order.
func NewRegistry(schemaID uint64, header view.HeaderLayout, engine endian.EndianEngine) *Registry {
	return &Registry{
		header:     header,
		engine:     engine,
		schemaID:   schemaID,
		byTemplate: make(map[uint64]*Descriptor),
		byName:     make(map[uint64]*Descriptor),
		names:      collision.NewTracker(),
	}
}

// HeaderLayout returns the header layout shared by the registry's messages.
func (r *Registry) HeaderLayout() view.HeaderLayout {
	return r.header
}

// Engine returns the byte order engine shared by the registry's messages.
func (r *Registry) Engine() endian.EndianEngine {
	return r.engine
}

// SchemaID returns the schema identifier the registry accepts.
func (r *Registry) SchemaID() uint64 {
	return r.schemaID
}

// Register adds a descriptor. A template id or name already registered is
// rejected with errs.ErrDuplicateTemplate, a schema id other than the
// registry's with errs.ErrSchemaMismatch. Two distinct names hashing to the
// same value cannot share a registry and are rejected with
// errs.ErrHashCollision, since name lookups dispatch on the hash alone.
func (r *Registry) Register(d Descriptor) error {
	if d.SchemaID != r.schemaID {
		return fmt.Errorf("register %q with schema id %d in registry for schema %d: %w",
			d.Name, d.SchemaID, r.schemaID, errs.ErrSchemaMismatch)
	}
	if _, exists := r.byTemplate[d.TemplateID]; exists {
		return fmt.Errorf("template id %d: %w", d.TemplateID, errs.ErrDuplicateTemplate)
	}
	h := NameHash(d.Name)
	if err := r.names.Track(d.Name, h); err != nil {
		return fmt.Errorf("name %q: %w", d.Name, err)
	}
	desc := d
	r.byTemplate[d.TemplateID] = &desc
	r.byName[h] = &desc

	return nil
}

// ByTemplateID returns the descriptor registered under the given template
// id.
func (r *Registry) ByTemplateID(id uint64) (*Descriptor, bool) {
	d, ok := r.byTemplate[id]
	return d, ok
}

// ByName returns the descriptor registered under the given name.
func (r *Registry) ByName(name string) (*Descriptor, bool) {
	d, ok := r.byName[NameHash(name)]
	return d, ok
}

// Identify reads buf's message header and returns the descriptor of the
// message it declares. The buffer is not otherwise validated; callers decode
// it through view.SizeBytesChecked before trusting the body.
func (r *Registry) Identify(buf []byte) (*Descriptor, error) {
	if buf == nil {
		return nil, errs.ErrNilBuffer
	}
	if len(buf) < r.header.Size {
		return nil, fmt.Errorf("%d byte buffer, %d byte header: %w",
			len(buf), r.header.Size, errs.ErrBufferTooSmall)
	}
	schemaID := r.headerField(buf, r.header.SchemaID)
	if schemaID != r.schemaID {
		return nil, fmt.Errorf("schema id %d, want %d: %w", schemaID, r.schemaID, errs.ErrSchemaMismatch)
	}
	templateID := r.headerField(buf, r.header.TemplateID)
	d, ok := r.byTemplate[templateID]
	if !ok {
		return nil, fmt.Errorf("template id %d: %w", templateID, errs.ErrUnknownTemplate)
	}

	return d, nil
}

func (r *Registry) headerField(buf []byte, f view.Field) uint64 {
	return prim.GetUint(buf[f.Offset:f.Offset+f.Width], f.Width, r.engine)
}
