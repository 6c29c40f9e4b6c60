// Package compress provides the codecs used to read and write compressed dataset files.
//
// Measurement campaigns produce many small CSV files that are often archived
// compressed. The dataset package picks a codec from the file extension and
// decompresses the whole file in memory before parsing it.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): data passes through unchanged
//   - Zstd (format.CompressionZstd): best ratio, standard .zst frames
//   - S2 (format.CompressionS2): S2 block format, fast in both directions
//   - LZ4 (format.CompressionLZ4): LZ4 frame format, fastest decompression
//
// Zstd uses the pure-Go klauspost/compress implementation by default. Building
// with the gozstd tag switches to the cgo binding of the reference library:
//
//	go build -tags gozstd ./...
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(raw)
//	if err != nil {
//	    return err
//	}
//	raw, err = codec.Decompress(packed)
//
// All codecs are safe for concurrent use.
package compress
