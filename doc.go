// Package oasdoc provides a typed, order-preserving document model for the
// path-collection portion of OpenAPI-style API descriptions.
//
// The library decodes a generic ordered value tree into typed records and
// re-encodes those records back to an equivalent tree. Objects in the format
// mix three kinds of keys: reserved fixed fields, dynamically named entries
// matched by a predicate (path templates starting with "/"), and open-ended
// specification extensions. The decoder routes every key into exactly one of
// those buckets in a single pass, so unrecognized keys are never an error.
//
// # Packages
//
//   - document: the core model (Object, RefOr, Paths, PathItem, Document)
//   - loader: loads JSON or YAML bytes into the model with resource limits
//   - docerrors: structured error types for programmatic handling
//
// # Quick Start
//
// Load a document and walk its operations:
//
//	result, err := loader.Load(loader.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for path, item := range result.Document.Paths.All() {
//		if item.IsRef() {
//			fmt.Printf("%s -> %s\n", path, item.Ref)
//			continue
//		}
//		for method, op := range item.Value.Operations() {
//			fmt.Printf("%s %s: %s\n", method, path, op.Summary)
//		}
//	}
//
// Decoded records round-trip: encoding a record produces an object whose
// fixed fields come first, followed by dynamic entries and then extensions,
// each bucket in source order.
package oasdoc
