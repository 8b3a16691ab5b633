//go:build !unix

package pipewatch

// noopWatcher - заглушка для платформ без SIGPIPE.
// Обрыв пайпа на таких платформах определяется только
// по ошибке записи в цикле вывода
type noopWatcher struct{}

// New возвращает наблюдателя-заглушку
func New() Watcher {

	return noopWatcher{}
}

// Install ничего не регистрирует
func (noopWatcher) Install() error {

	return nil
}

// Tripped всегда возвращает false
func (noopWatcher) Tripped() bool {

	return false
}
