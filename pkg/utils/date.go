package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // garante o fuso configurado mesmo em imagens sem zoneinfo
)

var ErrInvalidDate = errors.New("invalid date")

// TimestampLayouts são os formatos aceitos para a coluna de data da planilha,
// na ordem em que são tentados. O primeiro que funcionar é usado.
var TimestampLayouts = []string{
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2/1/2006 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2/1/2006",
	"2006-01-02",
}

// DayLayouts são os formatos aceitos para start_date e end_date (dia primeiro ou ISO)
var DayLayouts = []string{
	"2/1/2006",
	"2006-01-02",
	"2-1-2006",
}

// ParseTimestamp interpreta o texto como horário de parede (sem fuso).
// O resultado vem em UTC apenas como portador dos campos de data e hora.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range TimestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ParseDay converte um dia informado na query. Texto vazio retorna nil sem erro.
func ParseDay(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	for _, layout := range DayLayouts {
		if day, err := time.Parse(layout, dateStr); err == nil {
			return &day, nil
		}
	}

	return nil, fmt.Errorf("%w: %q (use DD/MM/YYYY or YYYY-MM-DD)", ErrInvalidDate, dateStr)
}

// LocalInstant converte um horário de parede no fuso loc para o instante absoluto.
// Horários ambíguos (fim do horário de verão) ficam sempre com o primeiro instante,
// mesmo que as linhas vizinhas indiquem o segundo: o contexto da planilha não é
// consultado. Horários inexistentes (início do horário de verão) avançam até a transição.
func LocalInstant(wall time.Time, loc *time.Location) time.Time {
	naive := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), time.UTC)
	if loc == nil || loc == time.UTC {
		return naive
	}

	_, offsetBefore := naive.Add(-24 * time.Hour).In(loc).Zone()
	_, offsetAfter := naive.Add(24 * time.Hour).In(loc).Zone()

	early := naive.Add(-time.Duration(offsetBefore) * time.Second)
	late := naive.Add(-time.Duration(offsetAfter) * time.Second)
	if early.After(late) {
		early, late = late, early
	}

	switch {
	case sameWallClock(early.In(loc), naive):
		return early
	case sameWallClock(late.In(loc), naive):
		return late
	}

	start, _ := late.In(loc).ZoneBounds()
	if start.IsZero() {
		return late
	}
	return start
}

// StartOfDay retorna o instante da meia-noite local do dia informado
func StartOfDay(day time.Time, loc *time.Location) time.Time {
	return LocalInstant(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC), loc)
}

// EndOfDay retorna o último segundo do dia: meia-noite local do dia seguinte menos um segundo
func EndOfDay(day time.Time, loc *time.Location) time.Time {
	next := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, time.UTC)
	return LocalInstant(next, loc).Add(-time.Second)
}

func sameWallClock(t, wall time.Time) bool {
	return t.Year() == wall.Year() && t.Month() == wall.Month() && t.Day() == wall.Day() &&
		t.Hour() == wall.Hour() && t.Minute() == wall.Minute() && t.Second() == wall.Second()
}
