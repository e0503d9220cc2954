package utils

import "time"

const monthKeyLayout = "2006-01"

// ParseDate converte yyyy-mm-dd. String vazia retorna nil (intervalo aberto).
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// CalendarDate mantém apenas ano, mês e dia (no fuso original) e descarta o horário
func CalendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInclusive conta os dias de calendário de start até end, incluindo as pontas
func DaysInclusive(start, end time.Time) int {
	return int(CalendarDate(end).Sub(CalendarDate(start)).Hours()/24) + 1
}

// MonthKey retorna o mês no formato yyyy-mm
func MonthKey(date time.Time) string {
	return date.Format(monthKeyLayout)
}

// DateKey retorna a data no formato yyyy-mm-dd
func DateKey(date time.Time) string {
	return CalendarDate(date).Format(time.DateOnly)
}

// WeekStart retorna o domingo da semana da data
func WeekStart(date time.Time) time.Time {
	day := CalendarDate(date)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
