// Package jsonfile reads mongoexport --jsonArray collection files from a
// configured data directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors let the gateway map driver failures onto load statuses.
var (
	ErrNotFound  = errors.New("collection file not found")
	ErrMalformed = errors.New("collection file is not a JSON array")
)

// DriverError represents an error from the driver layer.
type DriverError struct {
	Op  string
	Err error
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DriverError) Unwrap() error {
	return e.Err
}

type Driver struct {
	dataDir string
}

func NewDriver(dataDir string) *Driver {
	return &Driver{dataDir: dataDir}
}

// ReadCollection decodes the named file into raw records. The top level must
// be a JSON array; elements are returned undecoded beyond generic JSON types
// and in source order. Missing files unwrap to ErrNotFound, syntax errors and
// non-array top levels to ErrMalformed.
func (d *Driver) ReadCollection(ctx context.Context, fileName string) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, &DriverError{Op: "ReadCollection", Err: err}
	}

	path := filepath.Join(d.dataDir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DriverError{Op: "ReadCollection", Err: ErrNotFound}
		}
		return nil, &DriverError{Op: "ReadCollection", Err: err}
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &DriverError{Op: "ReadCollection", Err: errors.Join(ErrMalformed, err)}
	}

	records, ok := decoded.([]any)
	if !ok {
		return nil, &DriverError{Op: "ReadCollection", Err: ErrMalformed}
	}

	return records, nil
}
