package qr

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/menuly/restaurant-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilesWritesEachCode(t *testing.T) {
	codes, err := GenerateBatch("https://menu.example.com", "r1", 2)
	require.NoError(t, err)

	dir := t.TempDir()
	assert.Equal(t, 2, ExportFiles(dir, codes))
	for _, code := range codes {
		_, err := os.Stat(filepath.Join(dir, fmt.Sprintf("table-%d.png", code.Table)))
		assert.NoError(t, err)
	}
}

func TestExportFilesBestEffort(t *testing.T) {
	dir := t.TempDir()
	codes := []models.TableCode{
		{Table: 1, Image: []byte("png-1")},
		{Table: 2, Image: []byte("png-2")},
	}
	// make the first write fail by occupying its name with a directory
	require.NoError(t, os.Mkdir(filepath.Join(dir, "table-1.png"), 0o755))

	written := ExportFiles(dir, codes)
	assert.Equal(t, 1, written, "failure on one item must not stop the rest")
	data, err := os.ReadFile(filepath.Join(dir, "table-2.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-2"), data)
}
