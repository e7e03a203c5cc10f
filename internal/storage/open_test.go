package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/config"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.Config
		want Slot
	}{
		{"memory", config.Config{StorageBackend: config.BackendMemory}, &MemorySlot{}},
		{"file", config.Config{StorageBackend: config.BackendFile, StorageDir: filepath.Join(dir, "files")}, &FileSlot{}},
		{"sqlite", config.Config{StorageBackend: config.BackendSQLite, SQLitePath: filepath.Join(dir, "db", "recipes.db")}, &GormSlot{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, closer, err := Open(context.Background(), &tt.cfg, zap.NewNop())
			require.NoError(t, err)
			assert.IsType(t, tt.want, slot)
			assert.NoError(t, closer.Close())
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{StorageBackend: "tape"}, zap.NewNop())
	assert.Error(t, err)
}
