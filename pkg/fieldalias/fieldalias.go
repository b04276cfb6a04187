package fieldalias

import (
	"strconv"
	"strings"
)

// Пакет разрешает исторические псевдонимы полей в сырых записях мастер-данных.
// Один и тот же идентификатор в легаси-выгрузках встречается под разными
// ключами (hall_id / hallId / venue_id и т.п.); правило одно для всех сущностей:
// берётся первое непустое значение из списка кандидатов.

// Row сырая запись: ключ поля -> строковое значение
type Row map[string]string

// First возвращает первое непустое значение из candidates
// Пустым считается отсутствующий ключ, "", "null" и "0" не считается пустым
func First(row Row, candidates ...string) string {
	for _, key := range candidates {
		v, ok := row[key]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, "null") {
			continue
		}
		return v
	}
	return ""
}

// FirstInt64 возвращает первое непустое значение, распарсенное как int64
// Возвращает 0 и false, если ни один кандидат не дал валидного числа
func FirstInt64(row Row, candidates ...string) (int64, bool) {
	s := First(row, candidates...)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
