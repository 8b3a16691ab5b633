package reader

import (
	"fmt"
	"io"
	"os"
)

// Open выбирает источник ввода: если при запуске программы указано имя файла,
// то читаем из него, иначе читаем из stdin.
// Открытие должно полностью удаться до начала подсчёта - частичных режимов нет
func Open(fileName string) (io.ReadCloser, error) {

	if fileName == "" {
		return os.Stdin, nil
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}

	return file, nil
}
