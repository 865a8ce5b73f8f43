package codec

// Primitive is a fixed-capacity transform supplied by a wrapped codec
// library.
//
// It writes the transformed form of src into dst and returns the number of
// bytes produced, which must lie in [0, len(dst)]. If len(dst) was too small
// to hold the full output it returns len(dst)+1 instead, with no guarantee
// about dst's contents and no indication of how much capacity would have
// sufficed.
//
// The sentinel is convention-specific to the wrapped libraries and collides
// in principle with a legitimate output of exactly len(dst)+1 bytes; the
// collision is harmless under the retry protocol, since the grown buffer's
// next attempt reports the same count as a plain success.
//
// The error return is for the codec's own failures (e.g. corrupted input on
// decode); such errors are fatal and never retried.
type Primitive func(src, dst []byte) (int, error)

// Compressor compresses short byte sequences.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores data previously compressed with the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input data should be previously compressed using the same
	// algorithm. The decompressor validates the data format and returns an
	// error if the data is corrupted or uses an incompatible format.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Adaptive is a Codec built from a compress and a decompress primitive
// sharing one invoker configuration. It holds no per-call state and is safe
// for concurrent use as long as its primitives are.
type Adaptive struct {
	invoker    Invoker
	compress   Primitive
	decompress Primitive
}

var _ Codec = (*Adaptive)(nil)

// NewAdaptive wires a primitive pair into a Codec driven by the adaptive
// buffer-sizing protocol.
//
// Parameters:
//   - compress: Fixed-capacity encode primitive
//   - decompress: Fixed-capacity decode primitive
//   - opts: Invoker options (initial capacity, growth factor, max capacity)
//
// Returns:
//   - *Adaptive: New codec instance
func NewAdaptive(compress, decompress Primitive, opts ...Option) *Adaptive {
	return &Adaptive{
		invoker:    NewInvoker(opts...),
		compress:   compress,
		decompress: decompress,
	}
}

// Compress compresses the input data through the adaptive invoker.
func (a *Adaptive) Compress(data []byte) ([]byte, error) {
	return a.invoker.Invoke(a.compress, data)
}

// Decompress decompresses the input data through the adaptive invoker.
func (a *Adaptive) Decompress(data []byte) ([]byte, error) {
	return a.invoker.Invoke(a.decompress, data)
}
