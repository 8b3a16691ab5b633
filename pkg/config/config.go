package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// SortOrder - порядок сортировки результата
type SortOrder int

const (
	OrderKey   SortOrder = iota // сортировка по строке (по возрастанию)
	OrderCount                  // сортировка по количеству повторов (по убыванию)
	OrderNone                   // без сортировки (порядок не определён)
)

// String возвращает каноническое имя порядка сортировки
func (o SortOrder) String() string {

	switch o {
	case OrderKey:
		return "Key"
	case OrderCount:
		return "Count"
	case OrderNone:
		return "None"
	}

	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// ParseSortOrder разбирает значение флага --sortby без учёта регистра,
// при неизвестном значении возвращает ошибку
func ParseSortOrder(s string) (SortOrder, error) {

	switch strings.ToLower(s) {
	case "key":
		return OrderKey, nil
	case "count":
		return OrderCount, nil
	case "none":
		return OrderNone, nil
	}

	return OrderNone, fmt.Errorf("неизвестное значение сортировки %q (допустимы: Key, Count, None)", s)
}

// Config - конфигурация запуска утилиты
type Config struct {
	SortBy   SortOrder // порядок сортировки вывода
	Top      int       // сколько первых строк печатать (-1 - все)
	FileName string    // имя входного файла (пусто - читаем stdin)
}

// ParseFlags парсит флаги строки запуска программы
func ParseFlags() (Config, error) {

	var sortBy string
	var top int

	flag.StringVar(&sortBy, "sortby", "Count", "sort output by Key, Count or None")
	flag.StringVar(&sortBy, "s", "Count", "sort output by Key, Count or None (shorthand)")
	flag.IntVar(&top, "top", -1, "print only first N entries")

	// функция комментариев
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Использование: %s [--sortby=Key|Count|None] [--top=N] [файл]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Примеры:\n")
		fmt.Fprintf(os.Stderr, "  %s --sortby Count --top 10 access.log\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat access.log | %s -s Key\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse() // парсим флаги из командной строки (Must be called after all flags are defined and before flags are accessed by the program)

	order, err := ParseSortOrder(sortBy)
	if err != nil {
		return Config{}, err
	}

	// отличаем "флаг не задан" (значение по умолчанию -1 означает "печатать всё")
	// от явно переданного отрицательного значения
	topSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "top" {
			topSet = true
		}
	})
	if topSet && top < 0 {
		return Config{}, fmt.Errorf("значение --top должно быть неотрицательным, получено %d", top)
	}

	// допускаем не больше одного позиционного аргумента - имени файла
	if flag.NArg() > 1 {
		return Config{}, fmt.Errorf("лишние аргументы: %v", flag.Args()[1:])
	}

	config := Config{
		SortBy:   order,
		Top:      top,
		FileName: flag.Arg(0),
	}

	// возвращаем структуру конфигурации
	return config, nil
}
