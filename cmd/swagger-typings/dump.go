package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"swagger-typings/internal/pipeline"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpResult writes the resolved document and group contexts for debugging.
func dumpResult(w io.Writer, res *pipeline.Result) {
	dumpConfig.Fdump(w, res.Document, res.Groups)
}
