package helpers

import (
	"context"
	"strings"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var activityLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseActivityTime дата последней активности кандидата в одном из поддерживаемых форматов
func ParseActivityTime(timeStr string) (time.Time, bool) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}, false
	}
	for _, layout := range activityLayouts {
		t, err := time.Parse(layout, timeStr)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatActivityTime дата активности для отчетов, нераспознанное значение возвращается как есть
func FormatActivityTime(timeStr string) string {
	t, ok := ParseActivityTime(timeStr)
	if !ok {
		return timeStr
	}
	return t.Format("02.01.2006")
}

// Plural окончание "s" для английских счетчиков
func Plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
