package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/prometheus"
)

const (
	formatName    = "inventory-ndjson"
	formatVersion = 1
)

type header struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
	Kind    string `json:"kind"`
	Count   int    `json:"count"`
}

// KindOf derives the record kind stored in the header from a collection name
func KindOf(name string) string {
	return strings.TrimSuffix(name, ".dat")
}

// Encode writes a header line followed by one JSON document per record
func Encode[T any](kind string, records []T) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(header{Format: formatName, Version: formatVersion, Kind: kind, Count: len(records)}); err != nil {
		return nil, err
	}
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return nil, fmt.Errorf("encode %s record %d: %w", kind, i, err)
		}
	}
	return buf.Bytes(), nil
}

// Decode parses data produced by Encode. Any deviation from the format,
// including a record count that does not match the header, is an error.
// Records are read as a JSON stream, so no record size limit applies.
func Decode[T any](kind string, data []byte) ([]T, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var h header
	if err := dec.Decode(&h); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header")
		}
		return nil, fmt.Errorf("header: %w", err)
	}
	if h.Format != formatName {
		return nil, fmt.Errorf("unknown format %q", h.Format)
	}
	if h.Version != formatVersion {
		return nil, fmt.Errorf("unsupported version %d", h.Version)
	}
	if h.Kind != kind {
		return nil, fmt.Errorf("collection holds %q, want %q", h.Kind, kind)
	}

	dec.DisallowUnknownFields()
	records := make([]T, 0, min(h.Count, 1024))
	for {
		var rec T
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	if len(records) != h.Count {
		return nil, fmt.Errorf("header announces %d records, found %d", h.Count, len(records))
	}
	return records, nil
}

// Save encodes records and replaces the named collection
func Save[T any](ctx context.Context, gw Gateway, name string, records []T) error {
	defer prometheus.TrackPersistence("save")(time.Now())

	data, err := Encode(KindOf(name), records)
	if err != nil {
		prometheus.RecordPersistenceError("save")
		return err
	}
	if err := gw.Write(ctx, name, data); err != nil {
		prometheus.RecordPersistenceError("save")
		return err
	}
	return nil
}

// Load reads and decodes the named collection. A collection that was never
// written loads as empty; one that cannot be decoded yields a *CorruptDataError.
func Load[T any](ctx context.Context, gw Gateway, name string) ([]T, error) {
	defer prometheus.TrackPersistence("load")(time.Now())

	data, err := gw.Read(ctx, name)
	if errors.Is(err, ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		prometheus.RecordPersistenceError("load")
		return nil, err
	}
	records, err := Decode[T](KindOf(name), data)
	if err != nil {
		prometheus.RecordPersistenceError("load")
		return nil, &CorruptDataError{Name: name, Err: err}
	}
	return records, nil
}
