// Package typescript implements the swagger-js TypeScript typings strategy:
// the rules that reshape a codegen document for the .d.ts templates.
//
// Components:
//   - TypeMapper: scalar type substitution (file -> Blob, Set -> Array)
//   - Deriver: name -> module path with import-mapping overrides and
//     model-name decoration stripping
//   - ImportResolver: composite ("A | B") import flattening and per-model
//     import records
//   - ClassifyParameters: body-like vs. other parameter partitioning
//   - PatchArrayModel: parent-chain shim and element type for array models
//   - TagGrouper: first declared tag matching the rendering group name
//
// Strategy bundles them behind the extension points the pipeline calls.
package typescript
