package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddInfo("info_code", "just so you know", "")
	d.AddWarning(CodeUnknownImport, "Catgory is not a known model", "Pet", "Category")
	d.AddError(CodeFilenameCollision, "./PetDto is shared by Pet, pet", "")

	assert.True(t, d.HasErrors())
	require.Len(t, d.All(), 3)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.Equal(t, SeverityWarning, d.All()[1].Severity)
	assert.Equal(t, SeverityInfo, d.All()[2].Severity)

	err := d.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s)")
	assert.Contains(t, err.Error(), CodeFilenameCollision)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "hello"},
			expected: "hello",
		},
		{
			name:     "code and subject",
			diag:     Diagnostic{Code: "c", Message: "m", Subject: "Pet"},
			expected: "Pet: [c] m",
		},
		{
			name:     "suggestions",
			diag:     Diagnostic{Code: "c", Message: "m", Suggestions: []string{"A", "B"}},
			expected: "[c] m (did you mean A, B?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
