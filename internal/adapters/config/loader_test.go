package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rpn/internal/adapters/config"
	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.FileConfigLoader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
version: "1"
workers: 3
validate: true
timeout: 30s
`)

	settings, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Workers: 3, Validate: true, Timeout: 30 * time.Second}, settings)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "validate: true\n")

	settings, err := newLoader(t).Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.Workers, settings.Workers)
	assert.True(t, settings.Validate)
	assert.Zero(t, settings.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	log.EXPECT().Debug("config file not found, using defaults", "path", missing).Times(1)

	settings, err := config.NewLoader(log).Load(missing)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoad_ReadFailure(t *testing.T) {
	// A directory cannot be read as a file.
	dir := t.TempDir()

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, dir, zErr.Metadata()["path"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"InvalidYAML", "workers: [1, 2", domain.ErrConfigParseFailed},
		{"WrongType", "workers: many", domain.ErrConfigParseFailed},
		{"BadTimeout", "timeout: soon", domain.ErrConfigParseFailed},
		{"ZeroWorkers", "workers: 0", domain.ErrInvalidConfig},
		{"NegativeTimeout", "timeout: -1s", domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	settings, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}
