package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmacy-assistant/internal/mocks"
)

func writeFakeReport(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))
	return path
}

func TestReportService_Search(t *testing.T) {
	t.Run("hits carry page numbers and snippets", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFakeReport(t, dir, "stock.pdf")

		extractor := new(mocks.MockPageExtractor)
		extractor.On("PageTexts", path).Return([]string{
			"monthly Amoxicillin stock report",
			"nothing relevant here",
			"reorder amoxicillin before June",
		}, nil)

		service := NewReportService(dir, extractor)
		hits, err := service.Search("Amoxicillin")

		assert.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "stock.pdf", hits[0].Filename)
		assert.Equal(t, 1, hits[0].Page)
		assert.Equal(t, path, hits[0].Path)
		assert.Contains(t, hits[0].Snippet, "Amoxicillin")
		assert.Equal(t, 3, hits[1].Page)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFakeReport(t, dir, "empty.pdf")

		extractor := new(mocks.MockPageExtractor)
		extractor.On("PageTexts", path).Return([]string{"unrelated text"}, nil)

		service := NewReportService(dir, extractor)
		hits, err := service.Search("amoxicillin")

		assert.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("unreadable files are skipped, not fatal", func(t *testing.T) {
		dir := t.TempDir()
		broken := writeFakeReport(t, dir, "broken.pdf")
		good := writeFakeReport(t, dir, "good.pdf")

		extractor := new(mocks.MockPageExtractor)
		extractor.On("PageTexts", broken).Return(nil, errors.New("malformed xref"))
		extractor.On("PageTexts", good).Return([]string{"aspirin usage trends"}, nil)

		service := NewReportService(dir, extractor)
		hits, err := service.Search("aspirin")

		assert.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "good.pdf", hits[0].Filename)
	})

	t.Run("non-pdf files are ignored", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("aspirin"), 0o644))

		extractor := new(mocks.MockPageExtractor)

		service := NewReportService(dir, extractor)
		hits, err := service.Search("aspirin")

		assert.NoError(t, err)
		assert.Empty(t, hits)
		extractor.AssertNotCalled(t, "PageTexts", mock.Anything)
	})

	t.Run("missing directory is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "reports")

		service := NewReportService(dir, new(mocks.MockPageExtractor))
		hits, err := service.Search("anything")

		assert.NoError(t, err)
		assert.Empty(t, hits)
		assert.DirExists(t, dir)
	})
}

func TestReportService_SaveReport(t *testing.T) {
	t.Run("stores pdf under the reports dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "reports")
		service := NewReportService(dir, new(mocks.MockPageExtractor))

		path, err := service.SaveReport("q1.pdf", []byte("%PDF-1.4"))

		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "q1.pdf"), path)
		assert.FileExists(t, path)
	})

	t.Run("rejects non-pdf uploads", func(t *testing.T) {
		service := NewReportService(t.TempDir(), new(mocks.MockPageExtractor))
		_, err := service.SaveReport("report.docx", []byte("x"))
		assert.Error(t, err)
	})

	t.Run("strips path components from the filename", func(t *testing.T) {
		dir := t.TempDir()
		service := NewReportService(dir, new(mocks.MockPageExtractor))

		path, err := service.SaveReport("../../etc/evil.pdf", []byte("%PDF-1.4"))

		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "evil.pdf"), path)
	})
}
