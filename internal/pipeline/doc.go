// Package pipeline runs the post-processing phases over a codegen document
// and produces the typed render context consumed by the template stage.
//
// Phases, strictly in this order:
//  1. Per operation: map parameter types, partition parameters, and find
//     the declared tag behind each rendering group.
//  2. Per model: patch array models, resolve import records, then audit
//     derived module paths for collisions and unknown imports.
//  3. Once: serialize the resolved document into the supporting data.
//
// Language rules live behind the Strategy interface; this package only
// orders the calls and collects diagnostics.
package pipeline
