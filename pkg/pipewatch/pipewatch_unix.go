//go:build unix

package pipewatch

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// sigPipeWatcher ловит SIGPIPE и выставляет атомарный флаг.
// Побочный эффект регистрации: runtime Go перестаёт завершать процесс
// по SIGPIPE, и запись в закрытый пайп возвращает обычную ошибку EPIPE
type sigPipeWatcher struct {
	tripped int32 // флаг состояния пайпа
}

// New возвращает наблюдателя для POSIX-платформ
func New() Watcher {

	return &sigPipeWatcher{}
}

// Install регистрирует канал на SIGPIPE и запускает горутину,
// которая при первом сигнале выставляет флаг
func (w *sigPipeWatcher) Install() error {

	// заводим и регистрируем канал для обработки SIGPIPE
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGPIPE)

	go func() {
		for range sigChan {
			atomic.StoreInt32(&w.tripped, 1)
		}
	}()

	return nil
}

// Tripped проверяет, был ли получен SIGPIPE
func (w *sigPipeWatcher) Tripped() bool {

	return atomic.LoadInt32(&w.tripped) == 1
}
