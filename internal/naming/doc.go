// Package naming provides the identifier transformations shared by filename
// derivation and tag grouping.
//
// Key capabilities:
//   - SanitizeName: reduce an arbitrary schema name to [A-Za-z0-9_]
//   - Camelize: join tokens into UpperCamelCase or lowerCamelCase
//   - SanitizeTag: turn an operation tag into a class-name candidate
//   - Suggest: rank known names by edit distance for diagnostics
package naming
