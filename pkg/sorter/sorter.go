package sorter

import (
	"runtime"
	"sort"
	"sync"

	"github.com/ZeroDot1/count/pkg/config"
)

// Entry - пара (строка, количество повторов), полученная из таблицы частот
type Entry struct {
	Line  string // содержимое строки
	Count uint64 // сколько раз строка встретилась
}

// FromTable переводит таблицу частот в слайс пар.
// Порядок элементов - порядок обхода мапы, то есть не определён
func FromTable(counts map[string]uint64) []Entry {

	entries := make([]Entry, 0, len(counts))
	for line, count := range counts {
		entries = append(entries, Entry{Line: line, Count: count})
	}

	return entries
}

// функция сравнения для сортировки
type lessFunc func(a, b Entry) bool

// lessByKey сравнивает пары по строке (по возрастанию),
// при равных строках - по количеству (по убыванию).
// Вторичный ключ недостижим для уникальных ключей мапы,
// но компаратор обязан давать полный порядок на любых данных
func lessByKey(a, b Entry) bool {

	if a.Line != b.Line {
		return a.Line < b.Line
	}

	return a.Count > b.Count
}

// lessByCount сравнивает пары по количеству (по убыванию),
// при равных количествах - по строке (по возрастанию)
func lessByCount(a, b Entry) bool {

	if a.Count != b.Count {
		return a.Count > b.Count
	}

	return a.Line < b.Line
}

// Sort упорядочивает слайс пар согласно выбранному порядку сортировки.
// Вариант OrderNone оставляет слайс как есть
func Sort(entries []Entry, order config.SortOrder) {

	switch order {
	case config.OrderKey:
		parallelSort(entries, lessByKey)
	case config.OrderCount:
		parallelSort(entries, lessByCount)
	case config.OrderNone:
		// порядок не определён, ничего не делаем
	}
}

// минимальный размер слайса, при котором есть смысл распараллеливать сортировку
const minParallel = 2048

// parallelSort сортирует слайс, распределяя работу по количеству ядер:
// каждая горутина сортирует свой кусок, затем куски попарно сливаются.
// Компаратор задаёт полный порядок, поэтому результат не зависит от разбиения
// и совпадает с однопоточной сортировкой тем же компаратором
func parallelSort(entries []Entry, less lessFunc) {

	// маленькие слайсы сортируем в один поток
	if len(entries) < minParallel {
		sort.Slice(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
		return
	}

	// режем слайс на куски по числу ядер
	workers := runtime.NumCPU()
	chunk := (len(entries) + workers - 1) / workers

	// bounds хранит границы кусков: кусок i - это entries[bounds[i]:bounds[i+1]]
	bounds := make([]int, 0, workers+1)
	for lo := 0; lo < len(entries); lo += chunk {
		bounds = append(bounds, lo)
	}
	bounds = append(bounds, len(entries))

	// сортируем каждый кусок в своей горутине
	var wg sync.WaitGroup
	for i := 0; i+1 < len(bounds); i++ {
		wg.Add(1) // увеличиваем счётчик WaitGroup
		go func(lo, hi int) {
			defer wg.Done()
			part := entries[lo:hi]
			sort.Slice(part, func(i, j int) bool { return less(part[i], part[j]) })
		}(bounds[i], bounds[i+1])
	}
	wg.Wait() // ждём, пока все куски будут отсортированы

	// попарно сливаем соседние отсортированные куски, пока не останется один
	buf := make([]Entry, len(entries))
	for len(bounds) > 2 {

		merged := []int{bounds[0]}
		var mergeWg sync.WaitGroup

		i := 0
		for ; i+2 < len(bounds); i += 2 {
			mergeWg.Add(1)
			go func(lo, mid, hi int) {
				defer mergeWg.Done()
				mergeInto(entries[lo:mid], entries[mid:hi], buf[lo:hi], less)
				copy(entries[lo:hi], buf[lo:hi])
			}(bounds[i], bounds[i+1], bounds[i+2])
			merged = append(merged, bounds[i+2])
		}

		// непарный хвост переносим на следующий проход как есть
		if i+1 < len(bounds) {
			merged = append(merged, bounds[i+1])
		}

		mergeWg.Wait()
		bounds = merged
	}
}

// mergeInto сливает два отсортированных куска в выходной буфер
func mergeInto(left, right, out []Entry, less lessFunc) {

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}

	// дописываем остатки
	k += copy(out[k:], left[i:])
	copy(out[k:], right[j:])
}
