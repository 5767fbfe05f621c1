// Package render emits the TypeScript declaration package from a
// post-processed document.
//
// Generation uses text/template. Output is deterministic: models and groups
// are rendered in document order, supporting files in the order listed by
// the pipeline.
//
// Files produced:
//   - model/<Model>.d.ts per model not resolved through the import mapping
//   - api/<group>.d.ts per operation group
//   - api.d.ts, index.d.ts, index.js
//   - package.json, README.md
//   - api.json (the resolved document)
package render
