// Пакет pipewatch следит за закрытием читающего конца пайпа на выводе
// (например, когда вывод программы передан в head). Наблюдатель выставляет
// общий флаг, который цикл вывода проверяет после каждой строки
package pipewatch

// Watcher - наблюдатель за состоянием пайпа вывода
type Watcher interface {
	// Install регистрирует обработчик на всё время жизни процесса
	Install() error
	// Tripped сообщает, был ли закрыт читающий конец пайпа.
	// Флаг переходит из false в true не более одного раза и не сбрасывается
	Tripped() bool
}
