package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/screener/internal/adapters/detector"
	"go.trai.ch/screener/internal/core/domain"
)

func TestDetectEnvironment(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	t.Run("CI forces plain mode", func(t *testing.T) {
		t.Setenv("CI", "true")
		assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(f))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		t.Setenv("CI", "")
		assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(f))
	})

	t.Run("no output", func(t *testing.T) {
		t.Setenv("CI", "")
		assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(nil))
	})
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		expected detector.OutputMode
	}{
		{name: "auto keeps detection", detected: detector.ModeInteractive, flag: "auto", expected: detector.ModeInteractive},
		{name: "empty keeps detection", detected: detector.ModePlain, flag: "", expected: detector.ModePlain},
		{name: "tui overrides", detected: detector.ModePlain, flag: "tui", expected: detector.ModeInteractive},
		{name: "plain overrides", detected: detector.ModeInteractive, flag: "plain", expected: detector.ModePlain},
		{name: "ci overrides", detected: detector.ModeInteractive, flag: "ci", expected: detector.ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := detector.ResolveMode(tt.detected, tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	t.Run("unknown flag", func(t *testing.T) {
		_, err := detector.ResolveMode(detector.ModePlain, "fancy")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
