package compress

// ZstdCompressor favors compression ratio over speed, which suits archived
// capture journals read back rarely. The implementation is selected at build
// time: cgo builds use the libzstd binding, pure Go builds the klauspost
// port; the two produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
