// Package typeenc decodes, encodes, and pretty-prints Objective-C runtime
// type-encoding strings.
//
// The core entry points are Decode (one encoded type to a Type tree), the
// Type.Encode inverse, and Type.Decl for a C-like declaration. ParseSignature
// splits a full method-type encoding into its return/argument slots without
// decoding them, and ParseProperty decodes property attribute strings.
//
// All operations are pure functions over immutable inputs: malformed input
// yields a nil result, never a panic, and values may be shared across
// goroutines freely.
package typeenc
