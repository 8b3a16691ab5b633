package counter

import (
	"bufio"
	"fmt"
	"io"
)

// максимальный размер строки для чтения больших файлов
const maxCapacity = 1024 * 1024 * 1024 // 1GB

// Count считывает ввод по строкам до конца и строит таблицу частот:
// ключ - строка без завершающего перевода строки (байт в байт, без нормализации),
// значение - сколько раз строка встретилась.
// При ошибке чтения возвращает ошибку, накопленные счётчики не используются
func Count(r io.Reader) (map[string]uint64, error) {

	scanner := bufio.NewScanner(r)
	// увеличиваем буфер для чтения длинных строк (по умолчанию 64KB)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCapacity)

	counts := make(map[string]uint64)

	for scanner.Scan() {
		counts[scanner.Text()]++
	}

	// обрабатываем ошибку сканера
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ошибка считывания: %w", err)
	}

	// возвращаем таблицу частот
	return counts, nil
}
