package primitive

import "github.com/smazio/smazio/codec"

// NewNoOpCodec creates a pass-through codec that copies data unchanged.
//
// Useful for baselines and for disabling compression without changing call
// sites. The copy still runs under the adaptive sizing protocol, so inputs
// larger than the initial capacity exercise the growth path like any other
// codec.
//
// Returns:
//   - *codec.Adaptive: New pass-through codec instance
func NewNoOpCodec(opts ...codec.Option) *codec.Adaptive {
	return codec.NewAdaptive(noopTransform, noopTransform, opts...)
}

func noopTransform(src, dst []byte) (int, error) {
	if len(src) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, src), nil
}
