// Package dataset loads the click-log collection used by the demo
// driver: a tab-separated file with a header row and a ClickURL
// column.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoClickURL is returned when the header row has no ClickURL
// column.
var ErrNoClickURL = errors.New("dataset: no ClickURL column in header")

// Load reads the tab-separated collection at path and returns the
// unique non-empty ClickURL values in first-seen order.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	// Click-log rows have trailing fields missing; don't enforce a width.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	col := -1
	for i, name := range header {
		if name == "ClickURL" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, ErrNoClickURL
	}

	seen := make(map[string]struct{})
	var urls []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read record: %w", err)
		}
		if col >= len(rec) || rec[col] == "" {
			continue
		}
		if _, dup := seen[rec[col]]; dup {
			continue
		}
		seen[rec[col]] = struct{}{}
		urls = append(urls, rec[col])
	}
	return urls, nil
}
