package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCancellations(t *testing.T) {
	body := `1. DERELICT VESSEL ADRIFT.
2. CANCEL HYDROARC 134/25.
3. CANCEL THIS MSG 222359Z AUG 25.`

	cancels := ExtractCancellations(body, DefaultPivotYear)
	require.Len(t, cancels, 2)

	assert.Equal(t, "HYDROARC 134/25", cancels[0].Reference)
	assert.Nil(t, cancels[0].DTG)

	assert.Equal(t, "THIS MSG 222359Z AUG 25", cancels[1].Reference)
	require.NotNil(t, cancels[1].DTG)
	assert.Equal(t, time.Date(2025, time.August, 22, 23, 59, 0, 0, time.UTC), *cancels[1].DTG)
}

func TestExtractCancellations_ReferenceForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"navarea reference", "CANCEL NAVAREA XIII 95/18.", "NAVAREA XIII 95/18"},
		{"navwarn reference", "CANCEL NAVWARN 12/25.", "NAVWARN 12/25"},
		{"this message spelled out", "CANCEL THIS MESSAGE 010001Z JAN 26.", "THIS MESSAGE 010001Z JAN 26"},
		{"bare numeric reference", "CANCEL 47/18.", "47/18"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cancels := ExtractCancellations(tt.body, DefaultPivotYear)
			require.Len(t, cancels, 1)
			assert.Equal(t, tt.want, cancels[0].Reference)
		})
	}
}

func TestExtractCancellations_InvalidEmbeddedDTG(t *testing.T) {
	// The clause still counts; only the deadline stays unset.
	cancels := ExtractCancellations("CANCEL THIS MSG 992359Z AUG 25.", DefaultPivotYear)
	require.Len(t, cancels, 1)
	assert.Equal(t, "THIS MSG 992359Z AUG 25", cancels[0].Reference)
	assert.Nil(t, cancels[0].DTG)
}

func TestExtractCancellations_None(t *testing.T) {
	assert.Empty(t, ExtractCancellations("NO CANCELLATION CLAUSES HERE.", DefaultPivotYear))
	assert.Empty(t, ExtractCancellations("", DefaultPivotYear))
}
