package config_test

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/memong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestOpenLog(t *testing.T) {
	t.Run("disabled discards output", func(t *testing.T) {
		restoreLogger(t)

		f, err := config.Debug{}.OpenLog()
		require.NoError(t, err)
		assert.Nil(t, f)
		assert.Equal(t, io.Discard, log.Writer())
	})

	t.Run("enabled writes to the file", func(t *testing.T) {
		restoreLogger(t)
		path := filepath.Join(t.TempDir(), "logs", "memong.log")

		f, err := config.Debug{Log: true, LogFile: path}.OpenLog()
		require.NoError(t, err)
		require.NotNil(t, f)
		defer f.Close()

		log.Println("hello from the test")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from the test")
	})

	t.Run("unwritable location", func(t *testing.T) {
		restoreLogger(t)
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		_, err := config.Debug{Log: true, LogFile: filepath.Join(blocker, "memong.log")}.OpenLog()
		assert.Error(t, err)
	})
}
