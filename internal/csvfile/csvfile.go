// Package csvfile reads and writes the flat CSV collections that are the
// durable source of truth for the record store. Files carry a fixed header
// row; a missing file is initialized with the header and reported as empty.
// Writes go through the temp-file, fsync, rename pattern so a crash never
// leaves a partially written collection behind.
package csvfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Read returns the data rows of the CSV at path, header excluded. If the file
// does not exist it is created with the header row only and an empty result
// is returned. Rows whose field count does not match the header are skipped;
// only an unreadable file is an error.
func Read(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if err := Write(path, columns, nil); err != nil {
			return nil, fmt.Errorf("initializing %s: %w", path, err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows [][]string
	for _, rec := range records[1:] {
		if len(rec) != len(columns) {
			// Skip malformed rows; the rewrite on the next mutation
			// drops them from the file.
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// Write atomically replaces the CSV at path with the header row followed by
// rows, preserving column order.
func Write(path string, columns []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".csv-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing rows: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
