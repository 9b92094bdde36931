package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (\w+)$`)

	weekdays = map[string]int{
		"monday":    1,
		"tuesday":   2,
		"wednesday": 3,
		"thursday":  4,
		"friday":    5,
		"saturday":  6,
		"sunday":    7,
	}
)

// Parser resolves date expressions ("2024-03-11", "today", "in 2 weeks",
// "next friday") into start-of-day times in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an absolute or relative date expression to the start of the
// resolved day. The baseTime is the reference point for relative expressions.
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	base := p.startOfDay(baseTime)

	if abs, err := time.ParseInLocation(DateFormat, expr, p.location); err == nil {
		return abs, nil
	}

	switch expr {
	case "today":
		return base, nil
	case "tomorrow":
		return base.AddDate(0, 0, 1), nil
	case "yesterday":
		return base.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, base)
	}

	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, base)
	}

	return baseTime, fmt.Errorf("unrecognized date expression: %q", expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return base, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return base, fmt.Errorf("invalid amount %q: %w", matches[1], err)
	}
	unit, ok := ParseUnit(matches[2])
	if !ok {
		return base, fmt.Errorf("unknown time unit: %q", matches[2])
	}

	return Add(base, amount, unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(expr string, base time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(expr, "next ")
	isoDay, ok := weekdays[dayName]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return NextWeekday(base, isoDay), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	return StartOfDay(t.In(p.location))
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
