package discovery

import (
	"sort"
	"strings"
)

// CombinationKey нормализует комбинацию в ключ кеша.
// Входы сортируются лексикографически (порядок прибытия не важен),
// модификатор дописывается в конец: тот же мультисет входов с другим
// модификатором - другой ключ.
func CombinationKey(inputs []string, modifier string) string {
	sorted := make([]string, len(inputs))
	copy(sorted, inputs)
	sort.Strings(sorted)
	return strings.Join(sorted, "+") + "::" + modifier
}
