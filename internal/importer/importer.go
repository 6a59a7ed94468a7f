package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"digital-menu/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads menu exports and inserts/updates catalog entries.
// Expected headers: name, description, category, price, image, available.
// Price is in decimal currency units ("45.90").
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts menu entries. It returns the number of
// imported products and stops at the first invalid row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if product == nil {
			continue // blank row
		}

		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert %q: %w", product.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	get := func(key string) string {
		i, ok := index[key]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := get("name")
	category := get("category")
	priceRaw := get("price")
	if name == "" && category == "" && priceRaw == "" {
		return nil, nil
	}
	if name == "" || category == "" || priceRaw == "" {
		return nil, fmt.Errorf("invalid row (name, category and price are required): %v", record)
	}

	cents, err := parsePriceCents(priceRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid price for %q: %w", name, err)
	}

	available := true
	if raw := get("available"); raw != "" {
		available, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid available flag for %q: %w", name, err)
		}
	}

	return &domain.Product{
		Name:        name,
		Description: get("description"),
		Category:    category,
		PriceCents:  cents,
		Image:       get("image"),
		Available:   available,
	}, nil
}

func parsePriceCents(raw string) (int64, error) {
	raw = strings.ReplaceAll(raw, ",", ".")
	units, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if units < 0 {
		return 0, errors.New("price must be non-negative")
	}
	return int64(math.Round(units * 100)), nil
}
