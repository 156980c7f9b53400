// Package querylog reads the resolver's newline-delimited JSON query log.
package querylog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"dnslens/internal/models"
)

// maxLineSize bounds a single log line; resolver entries with large answers
// can exceed bufio's default 64K token limit.
const maxLineSize = 1024 * 1024

// Load parses the query log at path. Blank lines and lines that fail to
// decode are skipped; a missing or unreadable file is an error, since
// without the log there is nothing to show.
func Load(path string, logger *zap.Logger) ([]models.QueryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening query log: %w", err)
	}
	defer f.Close()

	var records []models.QueryRecord
	var skipped int

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec models.QueryRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			// Skip malformed lines
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading query log: %w", err)
	}

	if skipped > 0 {
		logger.Debug("skipped malformed query log lines",
			zap.String("path", path), zap.Int("count", skipped))
	}
	logger.Debug("query log loaded",
		zap.String("path", path), zap.Int("records", len(records)))
	return records, nil
}
