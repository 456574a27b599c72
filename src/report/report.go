// Package report persists verification reports as YAML.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Blackdeer1524/compositehash/src/verify"
)

var ErrEmptyPath = errors.New("report path is empty")

// Write stores r at path, creating missing parent directories.
func Write(fs afero.Fs, path string, r verify.Report) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	path = filepath.Clean(path)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)

	if err = enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err = enc.Close(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	return nil
}

func Read(fs afero.Fs, path string) (verify.Report, error) {
	var r verify.Report

	data, err := afero.ReadFile(fs, filepath.Clean(path))
	if err != nil {
		return r, fmt.Errorf("failed to read report file: %w", err)
	}

	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("failed to decode report: %w", err)
	}

	return r, nil
}
