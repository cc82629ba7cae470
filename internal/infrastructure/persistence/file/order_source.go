package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sales_analytics/internal/domain/repository"
)

// OrderSource reads seed records from a JSON file holding an array of objects.
type OrderSource struct {
	path string
}

var _ repository.SeedSource = (*OrderSource)(nil)

func NewOrderSource(path string) *OrderSource {
	return &OrderSource{path: path}
}

func (s *OrderSource) Name() string {
	return s.path
}

func (s *OrderSource) Records(ctx context.Context) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &repository.NotFoundError{Source: s.path}
	}
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", s.path, err)
	}

	records, err := DecodeRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", s.path, err)
	}
	return records, nil
}

// DecodeRecords decodes a JSON array of objects, keeping numbers as json.Number.
func DecodeRecords(raw []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
