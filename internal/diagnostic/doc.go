// Package diagnostic provides structured warnings and errors collected while
// post-processing a codegen document.
//
// Diagnostics never stop a run on their own; the pipeline decides which
// codes are fatal (for example filename collisions in strict mode).
package diagnostic
