package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Writes prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", "\033[36m", &buf)
		require.NoError(t, err)

		l.Info("generated maze")
		l.Warning("slow solve")
		l.Error("bad request")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "[MAZE]")
		assert.Contains(t, lines[0], "[INFO]")
		assert.True(t, strings.HasSuffix(lines[0], "generated maze"))
		assert.Contains(t, lines[1], "[WARNING]")
		assert.Contains(t, lines[2], "[ERROR]")
	})

	t.Run("Rejects nil writer", func(t *testing.T) {
		l, err := New("APP", "", nil)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
