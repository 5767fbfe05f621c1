package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swagger-typings/internal/document"
)

func TestClassifyParameters(t *testing.T) {
	petID := &document.Parameter{ParamName: "petId", IsPathParam: true, Required: true}
	body := &document.Parameter{ParamName: "body", IsBodyParam: true}
	limit := &document.Parameter{ParamName: "limit", IsQueryParam: true}
	file := &document.Parameter{ParamName: "file", IsFormParam: true, Required: true}
	trace := &document.Parameter{ParamName: "X-Trace", IsHeaderParam: true}

	tests := []struct {
		name         string
		params       []*document.Parameter
		wantParams   []*document.Parameter
		wantBody     []*document.Parameter
		wantRequired bool
	}{
		{
			name:         "mixed preserves order",
			params:       []*document.Parameter{petID, body, limit, file, trace},
			wantParams:   []*document.Parameter{petID, limit, trace},
			wantBody:     []*document.Parameter{body, file},
			wantRequired: true,
		},
		{
			name:         "optional body only",
			params:       []*document.Parameter{body},
			wantParams:   []*document.Parameter{},
			wantBody:     []*document.Parameter{body},
			wantRequired: false,
		},
		{
			name:         "required non-body does not count",
			params:       []*document.Parameter{petID, limit},
			wantParams:   []*document.Parameter{petID, limit},
			wantBody:     []*document.Parameter{},
			wantRequired: false,
		},
		{
			name:         "no params",
			params:       nil,
			wantParams:   []*document.Parameter{},
			wantBody:     []*document.Parameter{},
			wantRequired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &document.Operation{AllParams: tt.params}
			ClassifyParameters(op)

			assert.Equal(t, tt.wantParams, op.XParams)
			assert.Equal(t, tt.wantBody, op.XRequestBodyParams)
			assert.Equal(t, tt.wantRequired, op.IsBodyParamsRequired)

			// Partitions cover AllParams exactly once.
			require.Len(t, op.AllParams, len(op.XParams)+len(op.XRequestBodyParams))

			seen := make(map[*document.Parameter]int)
			for _, p := range op.XParams {
				seen[p]++
			}

			for _, p := range op.XRequestBodyParams {
				seen[p]++
			}

			for _, p := range op.AllParams {
				assert.Equal(t, 1, seen[p], p.ParamName)
			}
		})
	}
}

func TestClassifyParameters_Idempotent(t *testing.T) {
	op := &document.Operation{AllParams: []*document.Parameter{
		{ParamName: "body", IsBodyParam: true, Required: true},
		{ParamName: "q", IsQueryParam: true},
	}}

	ClassifyParameters(op)
	ClassifyParameters(op)

	assert.Len(t, op.XParams, 1)
	assert.Len(t, op.XRequestBodyParams, 1)
	assert.True(t, op.IsBodyParamsRequired)
}
