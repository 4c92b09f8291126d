package locale

import (
	"golang.org/x/text/language"
)

// Supported lists the label languages in matcher priority order.
// Japanese is the default, matching the audience of the dashboard.
var Supported = []language.Tag{
	language.Japanese,
	language.English,
}

var matcher = language.NewMatcher(Supported)

var monthLabels = map[language.Tag][12]string{
	language.Japanese: {
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	language.English: {
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
}

var weekdayLabels = map[language.Tag][7]string{
	language.Japanese: {"日", "月", "火", "水", "木", "金", "土"},
	language.English:  {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// Labels resolves chart labels for one language.
type Labels struct {
	tag language.Tag
}

// Match picks the best supported language for an Accept-Language
// header value, falling back to Japanese.
func Match(acceptLanguage string) Labels {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Labels{tag: language.Japanese}
	}
	_, index, _ := matcher.Match(tags...)
	return Labels{tag: Supported[index]}
}

// Month returns the label for a 1-based month number.
func (l Labels) Month(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthLabels[l.tag][month-1]
}

// Weekday returns the label for a 0-based weekday (0 = Sunday).
func (l Labels) Weekday(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return weekdayLabels[l.tag][day]
}

// Tag exposes the resolved language.
func (l Labels) Tag() language.Tag {
	return l.tag
}
