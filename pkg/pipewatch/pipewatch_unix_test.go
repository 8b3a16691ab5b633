//go:build unix

package pipewatch

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrippedDefault проверяет, что свежий наблюдатель не взведён
func TestTrippedDefault(t *testing.T) {

	watcher := New()
	assert.False(t, watcher.Tripped())
}

// TestTrippedAfterSignal проверяет взведение флага после SIGPIPE.
// Сигнал посылаем себе, гарантий по времени доставки нет,
// поэтому ждём появления флага с таймаутом
func TestTrippedAfterSignal(t *testing.T) {

	watcher := New()
	require.NoError(t, watcher.Install())

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGPIPE))

	assert.Eventually(t, watcher.Tripped, 2*time.Second, 10*time.Millisecond)

	// флаг не сбрасывается
	assert.True(t, watcher.Tripped())
}
