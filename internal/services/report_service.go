package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pharmacy-assistant/internal/infra/pdf"
	"pharmacy-assistant/internal/parser"
)

// ReportHit is one page of one report containing the searched keyword.
type ReportHit struct {
	Filename string `json:"filename"`
	Page     int    `json:"page"`
	Path     string `json:"path"`
	Snippet  string `json:"snippet,omitempty"`
}

// ReportService stores uploaded PDF reports in a directory and searches
// their pages for keywords. Files it cannot read are skipped with a
// warning, not fatal to the search.
type ReportService struct {
	dir       string
	extractor pdf.PageExtractor
}

func NewReportService(dir string, extractor pdf.PageExtractor) *ReportService {
	return &ReportService{dir: dir, extractor: extractor}
}

// SaveReport writes an uploaded PDF into the reports directory and returns
// its path. An existing file with the same name is replaced.
func (s *ReportService) SaveReport(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	name := filepath.Base(filename)
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "", fmt.Errorf("%s: only PDF reports are accepted", name)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save report %s: %w", name, err)
	}
	return path, nil
}

// Search scans every PDF page in the reports directory for keyword,
// case-insensitively, and returns one hit per matching page with a context
// snippet around the first occurrence.
func (s *ReportService) Search(keyword string) ([]ReportHit, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	lowered := strings.ToLower(keyword)
	var hits []ReportHit
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		pages, err := s.extractor.PageTexts(path)
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("could not process report")
			continue
		}

		for i, text := range pages {
			if !strings.Contains(strings.ToLower(text), lowered) {
				continue
			}
			hit := ReportHit{
				Filename: entry.Name(),
				Page:     i + 1,
				Path:     path,
			}
			if snippet, ok := parser.Context(text, keyword); ok {
				hit.Snippet = snippet
			}
			hits = append(hits, hit)
		}
	}
	return hits, nil
}
