package kafkaexport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/kafka-cost-report-go/internal/shared/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// wrapInValue monta o envelope externo com o payload serializado na string "Value".
func wrapInValue(t *testing.T, innerJSON string) string {
	t.Helper()
	outer, err := json.Marshal(map[string]string{"Value": innerJSON})
	require.NoError(t, err)
	return string(outer)
}

func TestDiscoverFilesMatchesPattern(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "topic-message", "{}")
	writeFile(t, tmpDir, "topic-message(1)", "{}")
	writeFile(t, tmpDir, "other", "{}")

	repo := NewFileRepository()
	files, err := repo.DiscoverFiles(tmpDir, "topic-message")

	require.NoError(t, err)
	assert.Equal(t, []string{"topic-message", "topic-message(1)"}, files)
}

func TestDiscoverFilesCaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "Topic-Message-2", "{}")

	repo := NewFileRepository()
	files, err := repo.DiscoverFiles(tmpDir, "topic-message")

	require.NoError(t, err)
	assert.Equal(t, []string{"Topic-Message-2"}, files)
}

func TestDiscoverFilesIgnoresSubdirectories(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "topic-message-dir"), 0755))
	writeFile(t, filepath.Join(tmpDir, "topic-message-dir"), "topic-message-nested", "{}")

	repo := NewFileRepository()
	files, err := repo.DiscoverFiles(tmpDir, "topic-message")

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverFilesMissingDirectory(t *testing.T) {
	repo := NewFileRepository()
	_, err := repo.DiscoverFiles(filepath.Join(t.TempDir(), "does-not-exist"), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found")
}

func TestDiscoverFilesPathIsNotDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "topic-message", "{}")

	repo := NewFileRepository()
	_, err := repo.DiscoverFiles(path, "topic-message")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestExtractRecordsFromValueEnvelope(t *testing.T) {
	tmpDir := t.TempDir()
	inner := `{"data":[{"id":"a","cost":1.5,"cost_unit":"2"},{"id":"b","cost":2.5}]}`
	path := writeFile(t, tmpDir, "topic-message", wrapInValue(t, inner))

	repo := NewFileRepository()
	rows, warnings, err := repo.ExtractRecords(path)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, 1.5, rows[0].Cost)
	assert.Equal(t, "2", rows[0].CostUnit)
	// cost_unit ausente recebe o valor padrão no decode
	assert.Equal(t, "UNKNOWN", rows[1].CostUnit)
}

func TestExtractRecordsInvalidInnerJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "topic-message", wrapInValue(t, "{not valid json"))

	repo := NewFileRepository()
	rows, _, err := repo.ExtractRecords(path)

	assert.Empty(t, rows)
	var exErr *types.ExtractError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, types.ExtractErrorInnerParse, exErr.Kind)
	assert.Equal(t, "topic-message", exErr.File)
}

func TestExtractRecordsInvalidOuterJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "topic-message", "this is not json")

	repo := NewFileRepository()
	rows, _, err := repo.ExtractRecords(path)

	assert.Empty(t, rows)
	var exErr *types.ExtractError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, types.ExtractErrorOuterParse, exErr.Kind)
}

func TestExtractRecordsUnreadableFile(t *testing.T) {
	repo := NewFileRepository()
	_, _, err := repo.ExtractRecords(filepath.Join(t.TempDir(), "missing-file"))

	var exErr *types.ExtractError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, types.ExtractErrorRead, exErr.Kind)
}

func TestExtractRecordsDirectPayloadFallback(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "topic-message", `{"data":[{"id":"x","cost":3.25,"cost_unit":"7"}]}`)

	repo := NewFileRepository()
	rows, warnings, err := repo.ExtractRecords(path)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "x", rows[0].ID)

	// O formato esperado do envelope não foi encontrado; fica registrado como warning.
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "Assuming direct JSON")
}

func TestExtractRecordsNonStringValueFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "topic-message", `{"Value":42,"data":[{"id":"y","cost":1.0}]}`)

	repo := NewFileRepository()
	rows, warnings, err := repo.ExtractRecords(path)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "y", rows[0].ID)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "Assuming direct JSON")
}

func TestExtractRecordsEmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "topic-message", wrapInValue(t, `{"data":[]}`))

	repo := NewFileRepository()
	rows, warnings, err := repo.ExtractRecords(path)

	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, warnings, 1)
	assert.True(t, strings.Contains(warnings[0], "No data rows found in inner JSON"))
}
