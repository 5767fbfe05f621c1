package typescript

import "swagger-typings/internal/document"

// ClassifyParameters partitions op.AllParams into XParams and
// XRequestBodyParams, preserving order, and sets IsBodyParamsRequired when
// any body-like parameter is required.
func ClassifyParameters(op *document.Operation) {
	op.XParams = make([]*document.Parameter, 0, len(op.AllParams))
	op.XRequestBodyParams = make([]*document.Parameter, 0, len(op.AllParams))
	op.IsBodyParamsRequired = false

	for _, p := range op.AllParams {
		if p.IsBodyLike() {
			op.XRequestBodyParams = append(op.XRequestBodyParams, p)
			op.IsBodyParamsRequired = op.IsBodyParamsRequired || p.Required

			continue
		}

		op.XParams = append(op.XParams, p)
	}
}
