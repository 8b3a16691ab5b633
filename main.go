/* Утилита count - подсчёт одинаковых строк во вводе,
аналог конвейера sort | uniq -c | sort за один проход */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ZeroDot1/count/pkg/config"
	"github.com/ZeroDot1/count/pkg/counter"
	"github.com/ZeroDot1/count/pkg/output"
	"github.com/ZeroDot1/count/pkg/pipewatch"
	"github.com/ZeroDot1/count/pkg/reader"
	"github.com/ZeroDot1/count/pkg/sorter"
)

func main() {

	// ставим наблюдателя за пайпом до любой работы,
	// чтобы обрыв вывода был виден с первой записи
	watcher := pipewatch.New()
	if err := watcher.Install(); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка установки обработчика сигнала: %v\n", err)
		os.Exit(1)
	}

	// парсим флаги запуска
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	// выбираем источник ввода: файл или stdin
	input, err := reader.Open(cfg.FileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer input.Close() // обеспечиваем закрытие файла

	// считаем повторы строк за один проход по вводу
	counts, err := counter.Count(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// переводим таблицу частот в пары и сортируем их
	entries := sorter.FromTable(counts)
	sorter.Sort(entries, cfg.SortBy)

	// выводим результат; обрыв пайпа - штатное завершение
	if err := output.Write(os.Stdout, entries, cfg.Top, watcher); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
