package etprimitive

import "time"

// DateLayout ISO-8601 日期格式（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// ParseDate 解析 ISO-8601 日期，非法日历日期（如 2024-02-30）返回错误
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate 格式化为 YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateDate 去掉时间部分，只保留日期（UTC）
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today 当天日期
func Today() time.Time {
	return TruncateDate(time.Now())
}
