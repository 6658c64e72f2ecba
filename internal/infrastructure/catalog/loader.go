package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// Column headers the workouts CSV must carry. Order in the file is free; the
// loader resolves columns by name.
var requiredColumns = []string{"Title", "Desc", "Equipment", "Level", "Type", "Rating"}

// Load reads the exercise catalog CSV from disk. Called once at process
// start; the returned slice is treated as read-only afterwards.
func Load(path string) ([]domain.ExerciseCatalogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	log.WithFields(log.Fields{"path": path, "entries": len(entries)}).Info("exercise catalog loaded")
	return entries, nil
}

// Parse reads catalog rows from a CSV stream.
func Parse(r io.Reader) ([]domain.ExerciseCatalogEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("catalog is missing column %q", name)
		}
	}

	var entries []domain.ExerciseCatalogEntry
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		entry := domain.ExerciseCatalogEntry{
			Title:       record[columns["Title"]],
			Description: record[columns["Desc"]],
			Equipment:   record[columns["Equipment"]],
			Level:       record[columns["Level"]],
			Type:        record[columns["Type"]],
			Rating:      parseRating(record[columns["Rating"]]),
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// parseRating coerces the rating column; unparseable values fall back to 0.
func parseRating(raw string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return rating
}
