package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jleung/sourcing-radar/internal/model"
)

// WriteJSON writes the full report as indented JSON.
func WriteJSON(w io.Writer, r *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}
	return nil
}

// ExportJSON writes the report to comparison-<keyword>.json in dir and
// returns the file path.
func ExportJSON(dir string, r *model.Report) (string, error) {
	path := filepath.Join(dir, "comparison-"+slug(r.Keyword)+".json")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, r); err != nil {
		return "", err
	}
	return path, nil
}

// slug makes a keyword safe for a file name.
func slug(keyword string) string {
	return strings.ReplaceAll(strings.TrimSpace(keyword), " ", "-")
}
