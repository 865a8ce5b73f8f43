// Package codec implements the adaptive buffer-sizing protocol for
// fixed-capacity transform primitives.
//
// A Primitive is an external encode or decode function that writes into a
// caller-supplied destination of declared capacity and signals "capacity
// insufficient" by returning capacity+1 instead of a byte count. The
// Invoker wraps such a primitive with a grow-and-retry loop:
//
//  1. Allocate a working buffer at the initial capacity (one page by
//     default).
//  2. Invoke the primitive.
//  3. On insufficiency, multiply the capacity by the growth factor
//     (doubling by default) and retry.
//  4. On success, copy exactly the reported count into a fresh slice owned
//     by the caller.
//
// The raw capacity+1 sentinel never escapes this package: attempts are
// converted to a tagged success/insufficient result at the primitive
// boundary, and counts outside [0, capacity+1] fail with
// ErrPrimitiveContract.
//
// Adaptive pairs two primitives into the usual Compress/Decompress codec
// shape:
//
//	c := codec.NewAdaptive(encodePrimitive, decodePrimitive)
//	compressed, err := c.Compress(data)
//	if err != nil {
//	    return fmt.Errorf("compression failed: %w", err)
//	}
//
// Invocations share no mutable state beyond a buffer pool whose contents
// are never readable through results, so codecs are safe for concurrent
// use whenever their primitives are.
package codec
