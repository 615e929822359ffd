// Command genmock generates synthetic broadcast warning batches and the
// matching parsed-record fixtures. It uses the actual domain package so
// the expected output tracks real pipeline behavior.
//
// Each batch is one Kafka message, so each batch gets its own raw file:
// -raw-out is a template and the batch index is inserted before the
// extension (navwarn_batches.txt becomes navwarn_batches_01.txt and so
// on). Re-parsing each raw file on its own reproduces the records
// fixture; a single concatenated file would not, because segmentation
// and suffix normalization are per-batch.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -raw-out data/mock/navwarn_batches.txt \
//	  -records-out data/mock/navwarn_records.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/navwarn-etl/internal/domain"
)

var baseDate = time.Date(2025, time.August, 19, 23, 59, 0, 0, time.UTC)

// batches are representative of the broadcast-warn archive: header-first
// bulletins, a repeat suffix, an embedded cancellation, one bulletin
// with an area polygon, and one degraded record with no identifier.
var batches = []string{
	`HYDROARC 136/25(15).
BAFFIN BAY.
CANADA.
1. DERELICT M/V TIBERBORG ADRIFT IN
   VICINITY 71-45.10N 070-28.20W AT 192300Z AUG.
2. CANCEL HYDROARC 134/25.
3. CANCEL THIS MSG 222359Z AUG 25.
192359Z AUG 25
NNNN
`,
	`HYDROARC 137/25.
NORWEGIAN SEA.
ROCKET LAUNCHING IN AREA BOUND BY
73-48.00N 040-10.20E, 68-33.00N 044-42.00E,
66-59.00N 044-24.00E, 73-48.00N 040-10.20E.
202359Z AUG 25
HYDROARC 138/25.
BARENTS SEA.
LIGHT KHARLOV UNLIT.
CANCEL 47/18.
212359Z AUG 25
NNNN
`,
	`BAFFIN BAY.
NUMEROUS GROWLER AND BERGY BITS REPORTED.
`,
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rawOut := flag.String("raw-out", "", "output path for raw batch text fixture")
	recordsOut := flag.String("records-out", "", "output path for expected parsed records JSON")
	flag.Parse()

	if *rawOut == "" || *recordsOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -raw-out, -records-out")
	}

	// Fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(baseDate))
	defer domain.SetClock(nil)

	rawPaths, records, err := writeFixtures(*rawOut, *recordsOut)
	if err != nil {
		return err
	}

	log.Printf("wrote %d batch files alongside %s and %d records to %s",
		len(rawPaths), *rawOut, len(records), *recordsOut)
	return nil
}

// writeFixtures emits one raw file per batch plus the expected-records
// JSON. Parsing each raw file independently and concatenating the
// results yields exactly the records fixture.
func writeFixtures(rawOut, recordsOut string) ([]string, []domain.NavWarnRecord, error) {
	var rawPaths []string
	var records []domain.NavWarnRecord
	for i, batch := range batches {
		path := numberedPath(rawOut, i+1)
		if err := writeFile(path, []byte(batch)); err != nil {
			return nil, nil, err
		}
		rawPaths = append(rawPaths, path)
		records = append(records, domain.ParseBatch(batch, domain.DefaultOptions())...)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal records: %w", err)
	}
	if err := writeFile(recordsOut, data); err != nil {
		return nil, nil, err
	}
	return rawPaths, records, nil
}

// numberedPath inserts a zero-padded batch index before the extension:
// numberedPath("mock/batches.txt", 2) is "mock/batches_02.txt".
func numberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%02d%s", strings.TrimSuffix(path, ext), n, ext)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
