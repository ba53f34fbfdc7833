// Package document implements the typed, order-preserving model for
// path-collection documents.
//
// The package is built from three pieces, composed leaf-first:
//
//   - [Object], an ordered string-keyed value tree. It is the sole
//     data-interchange surface: JSON and YAML codecs produce and consume it,
//     and every record decodes from and encodes to it.
//   - [Split] and [Builder], the partitioned object decoder and its inverse.
//     Split routes every key of an Object into exactly one of three buckets
//     (reserved fixed field, predicate-matched dynamic entry, or opaque
//     extension) in a single order-sensitive pass. Unrecognized keys are
//     never an error; they become extensions.
//   - [RefOr], the reference-or-inline node. An object whose key set is
//     exactly {"$ref"} decodes as a reference; any other shape decodes as the
//     inline payload via the payload's own decoder.
//
// On top of these sit the records: [Paths] (path templates to path items),
// [PathItem] (per-path operation slots), [Document] (the enclosing root),
// and the opaque payloads [Operation], [Parameter], and [Server].
//
// All records are plain value types. Decode and encode are pure functions of
// their inputs with no shared state, so independent decodes may run
// concurrently without coordination. Reference resolution (following a $ref
// to its target) is deliberately out of scope; see the Ref field on [RefOr].
//
// # Encoding order
//
// Encoding groups keys by bucket: fixed fields first (absent optional fields
// are omitted entirely, never written as null), then dynamic entries in
// stored order, then extensions in stored order. When a source object
// interleaved buckets, decode-then-encode preserves every key/value pair but
// not the interleaving. Within each bucket, source order is kept.
package document
