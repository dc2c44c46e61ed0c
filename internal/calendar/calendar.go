package calendar

import (
	"fmt"
	"time"
)

// DateLayout - формат дат в query-параметрах (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// endOfDay сдвигает полночь на последнюю секунду того же дня.
const endOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second

var monthLabels = [...]string{"", "JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// Month - календарный месяц конкретного года.
type Month struct {
	Year  int
	Month time.Month
}

// Label возвращает трёхбуквенную метку месяца.
func (m Month) Label() string {
	return Label(m.Month)
}

// Before сообщает, идёт ли m раньше other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m Month) next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Label возвращает метку месяца из таблицы JAN..DEC; для номеров вне 1..12 - пустую строку.
func Label(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthLabels[m]
}

// ParseDate разбирает дату YYYY-MM-DD в UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ShiftYears сдвигает дату на years календарных лет. Если в целевом месяце
// нет такого дня (29 февраля), день прижимается к последнему дню месяца.
func ShiftYears(t time.Time, years int) time.Time {
	year := t.Year() + years
	day := t.Day()
	if last := daysIn(year, t.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(year, t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Range - диапазон календарных дат, конец включается целиком (до 23:59:59).
type Range struct {
	Start time.Time
	End   time.Time
	valid bool
}

// NewRange строит диапазон из строк YYYY-MM-DD. Некорректный ввод не считается
// ошибкой: диапазон получается невалидным и ни с чем не совпадает.
func NewRange(start, end string) Range {
	s, err := ParseDate(start)
	if err != nil {
		return Range{}
	}
	e, err := ParseDate(end)
	if err != nil {
		return Range{}
	}
	return Range{Start: s, End: e, valid: true}
}

// RangeOf строит диапазон из уже разобранных дат (время суток отбрасывается).
func RangeOf(start, end time.Time) Range {
	return Range{Start: truncateDay(start), End: truncateDay(end), valid: true}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Valid сообщает, были ли обе даты разобраны.
func (r Range) Valid() bool {
	return r.valid
}

// Bounds возвращает границы фильтра по timestamp: начало первого дня и 23:59:59 последнего.
func (r Range) Bounds() (from, to time.Time) {
	return r.Start, r.End.Add(endOfDay)
}

// Year - год начала диапазона.
func (r Range) Year() int {
	return r.Start.Year()
}

// PriorYear возвращает тот же диапазон годом раньше.
func (r Range) PriorYear() Range {
	if !r.valid {
		return r
	}
	return Range{Start: ShiftYears(r.Start, -1), End: ShiftYears(r.End, -1), valid: true}
}

// Months возвращает упорядоченные месяцы от месяца начала до месяца конца включительно.
// Диапазон через границу года продолжается с января следующего года.
func (r Range) Months() []Month {
	if !r.valid {
		return nil
	}
	first := Month{Year: r.Start.Year(), Month: r.Start.Month()}
	last := Month{Year: r.End.Year(), Month: r.End.Month()}
	if last.Before(first) {
		return nil
	}

	var months []Month
	for m := first; !last.Before(m); m = m.next() {
		months = append(months, m)
	}
	return months
}

// DayRange возвращает диапазон одного календарного дня.
func DayRange(day string) Range {
	return NewRange(day, day)
}
