package reader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenFile проверяет чтение из указанного файла
func TestOpenFile(t *testing.T) {

	name := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(name, []byte("a\nb\n"), 0o644))

	src, err := Open(name)
	require.NoError(t, err)
	defer src.Close()

	data, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

// TestOpenMissingFile проверяет, что несуществующий файл даёт ошибку открытия
func TestOpenMissingFile(t *testing.T) {

	src, err := Open(filepath.Join(t.TempDir(), "no-such-file.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, src)
}

// TestOpenStdin проверяет, что пустое имя файла означает stdin
func TestOpenStdin(t *testing.T) {

	src, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, src)
}
