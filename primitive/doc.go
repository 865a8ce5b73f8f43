// Package primitive provides fixed-capacity transform primitives adapting
// real codec libraries to the codec package's convention, plus the registry
// of built-in codecs.
//
// Each adapter presents its library as a pair of codec.Primitive functions:
// count in [0, cap] on success, cap+1 when the destination was too small.
// Some libraries expose genuinely fixed-buffer APIs (LZ4 block decode);
// others allocate internally, and their adapters impose the convention by
// checking whether the produced bytes fit the destination. Either way the
// sizing protocol upstream stays identical.
//
// Built-in codecs:
//   - Smaz: short-string compression via the external go-smaz library (the
//     default codec of the root package)
//   - LZ4, S2, Zstd: general-purpose block codecs
//   - None: pass-through
//
// Obtain instances through GetCodec, GetCodecByName, or the per-algorithm
// constructors.
package primitive
