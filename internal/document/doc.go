// Package document holds the language-agnostic codegen model handed over by
// the upstream parsing stage, and loads it from disk.
//
// Key types:
//   - Document: models, operation groups, info and free-form extensions
//   - Model: a tagged variant (object, scalar, array) with parent chain and imports
//   - OperationGroup: operations filed under one rendering group name
//   - Operation / Parameter: per-endpoint data, enriched in place by post-processing
package document
