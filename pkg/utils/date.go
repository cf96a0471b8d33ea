package utils

import "time"

// ParseDate interpreta uma data no formato ISO (YYYY-MM-DD)
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// FormatDate formata uma data no formato ISO (YYYY-MM-DD)
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Today retorna a data atual truncada (sem hora), no fuso local
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
