package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/ZeroDot1/count/pkg/pipewatch"
	"github.com/ZeroDot1/count/pkg/sorter"
)

// Write выводит пары в формате "строка<TAB>количество", по одной на строку.
// Если top неотрицателен, печатаются только первые top пар.
// Закрытие читающего конца пайпа (по флагу наблюдателя или по ошибке EPIPE)
// завершает вывод без ошибки; прочие ошибки записи возвращаются вызывающему.
// Флаг проверяется после каждой строки, поэтому после закрытия пайпа
// может быть выведено не более одной лишней строки
func Write(w io.Writer, entries []sorter.Entry, top int, watcher pipewatch.Watcher) error {

	n := len(entries)
	if top >= 0 && top < n {
		n = top
	}

	out := bufio.NewWriter(w)

	for _, entry := range entries[:n] {

		if _, err := fmt.Fprintf(out, "%s\t%d\n", entry.Line, entry.Count); err != nil {
			if isBrokenPipe(err) {
				return nil
			}
			return fmt.Errorf("ошибка записи: %w", err)
		}

		// читатель закрыл пайп - дальше писать некому
		if watcher.Tripped() {
			break
		}
	}

	if err := out.Flush(); err != nil {
		if isBrokenPipe(err) {
			return nil
		}
		return fmt.Errorf("ошибка записи: %w", err)
	}

	return nil
}

// isBrokenPipe проверяет, вызвана ли ошибка записи закрытием пайпа
func isBrokenPipe(err error) bool {

	return errors.Is(err, syscall.EPIPE)
}
