package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/navwarn-etl/internal/domain"
)

const sampleBatch = `HYDROARC 136/25(15).
BAFFIN BAY.
1. DERELICT M/V TIBERBORG ADRIFT IN
   VICINITY 71-45.10N 070-28.20W AT 192300Z AUG.
2. CANCEL HYDROARC 134/25.
192359Z AUG 25
`

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootFlags.jsonOut = false
		rootFlags.pivotYear = domain.DefaultPivotYear
		rootFlags.rulesPath = ""
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_TextOutput(t *testing.T) {
	path := writeBatchFile(t, sampleBatch)

	out, err := runCommand(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "2025-08-19T23:59:00")
	assert.Contains(t, out, "HYDROARC 136/25(15)")
	assert.Contains(t, out, "derelict vessel")
	assert.Contains(t, out, "1 coords")
	assert.Contains(t, out, "1 cancellations")
}

func TestRun_TextOutput_DegradedRecord(t *testing.T) {
	path := writeBatchFile(t, "BAFFIN BAY.\nICEBERG REPORTED.\n")

	out, err := runCommand(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "absent")
	assert.Contains(t, out, "NO-ID")
	assert.Contains(t, out, "ice hazard")
}

func TestRun_JSONOutput(t *testing.T) {
	path := writeBatchFile(t, sampleBatch)

	out, err := runCommand(t, "--json", path)
	require.NoError(t, err)

	var records []domain.NavWarnRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "derelict vessel", records[0].Hazard)
	require.NotNil(t, records[0].MessageID)
	assert.Equal(t, "HYDROARC 136/25(15)", *records[0].MessageID)
}

func TestRun_CustomPivotYear(t *testing.T) {
	path := writeBatchFile(t, "HYDROARC 1/85.\nBODY.\n010000Z JAN 85\n")

	out, err := runCommand(t, "--pivot-year", "2010", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2085-01-01T00:00:00")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := runCommand(t, filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
