// Package main provides the CLI entrypoint for swagger-typings.
//
// swagger-typings post-processes a codegen document (models, operation
// groups, parameters, tags) and emits a TypeScript declaration package for
// the swagger-js client:
//   - maps types and resolves model imports, including union references
//   - partitions operation parameters into request and body parameters
//   - names API modules after the tags that produced them
//   - writes model and API .d.ts files, package.json, README.md and api.json
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}

		os.Exit(1)
	}
}
