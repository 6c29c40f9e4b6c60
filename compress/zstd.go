package compress

// ZstdCompressor stores files as standard Zstandard frames (.zst).
//
// The implementation is selected at build time: pure Go by default, the cgo
// gozstd binding with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
