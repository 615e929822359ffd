package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineTag
	}{
		{"dtg alone", "192359Z AUG 25", LineDTG},
		{"dtg with surrounding whitespace", "  192359Z AUG 25  ", LineDTG},
		{"dtg inside cancel clause is content", "3. CANCEL THIS MSG 222359Z AUG 25.", LineContent},
		{"dtg with trailing period is content", "192359Z AUG 25.", LineContent},
		{"dtg with leading text is content", "DTG 192359Z AUG 25", LineContent},
		{"empty", "", LineBlank},
		{"whitespace only", "   \t ", LineBlank},
		{"transmission trailer", "NNNN", LineBlank},
		{"prefixed transmission trailer", "=NNNN", LineBlank},
		{"header line", "HYDROARC 136/25(15).", LineContent},
		{"prose", "BAFFIN BAY.", LineContent},
		{"lowercase month is content", "192359z aug 25", LineContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLine(tt.line))
		})
	}
}
