package download

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Run fetches the chart and writes it to the resolved output path,
// which it returns. The destination appears atomically: the payload
// goes to a temp file in the same directory first and is renamed over
// the destination only once fully written, so no error path leaves a
// partial file behind.
func (d *Download) Run() (string, error) {
	outPath := d.resolveOutPath()
	log.Debugf("output file: %s", outPath)

	chartURL, err := d.Request.URL(d.BaseURL)
	if err != nil {
		return "", err
	}
	log.Debugf("chart url: %s", chartURL)

	raw, err := d.Fetcher.Fetch(chartURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch chart: %w", err)
	}
	log.Debugf("fetched %d bytes", len(raw))

	if err := writeAtomic(outPath, raw); err != nil {
		return "", err
	}

	return outPath, nil
}

// resolveOutPath applies the output rules: empty means the derived
// filename in the current directory, an existing directory gets the
// derived filename joined onto it, anything else is taken verbatim.
func (d *Download) resolveOutPath() string {
	if d.OutPath == "" {
		return d.Request.Filename()
	}

	info, err := os.Stat(d.OutPath)
	if err == nil && info.IsDir() {
		return filepath.Join(d.OutPath, d.Request.Filename())
	}

	return d.OutPath
}

// writeAtomic writes data to path via a temp file in the same
// directory plus a rename, so the destination is never observed half
// written. An existing file at path stays untouched until the rename.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
