package quickentry

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/taskmarker"
)

// Rule is one rewrite pass. Match reports whether the pass applies to text;
// Replace performs the substitution and is only called after a match.
type Rule struct {
	Name    string
	Match   func(text string) bool
	Replace func(text string, now time.Time) string
}

// weekdayNames is Monday-first; the ISO weekday of a name is its index + 1.
var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var (
	// "months" is deliberately absent from the unit set.
	offsetRe  = regexp.MustCompile(`in (\d{1,3}) (days|day|weeks|week|month|years|year) `)
	weekdayRe = regexp.MustCompile(`(` + strings.Join(weekdayNames[:], "|") + `) `)
)

var roleKeywords = []struct {
	keyword string
	role    taskmarker.Role
}{
	{"due", taskmarker.Due},
	{"start", taskmarker.Start},
	{"scheduled", taskmarker.Scheduled},
	{"done", taskmarker.Done},
	{"high", taskmarker.PriorityHigh},
	{"medium", taskmarker.PriorityMedium},
	{"low", taskmarker.PriorityLow},
	{"repeat", taskmarker.Recurrence},
	{"recurring", taskmarker.Recurrence},
}

var relativeDays = []struct {
	word   string
	offset int
}{
	{"today", 0},
	{"tomorrow", 1},
	{"yesterday", -1},
}

// DefaultRules returns the rewrite passes in the order Transform applies them.
// The returned slice is a fresh copy.
func DefaultRules() []Rule {
	rules := make([]Rule, 0, len(roleKeywords)+len(relativeDays)+2)
	for _, rk := range roleKeywords {
		rules = append(rules, KeywordRule(rk.keyword, taskmarker.MarkerFor(rk.role)))
	}
	for _, rd := range relativeDays {
		rules = append(rules, RelativeDayRule(rd.word, rd.offset))
	}
	return append(rules, OffsetRule(), WeekdayRule())
}

// KeywordRule replaces the first occurrence of keyword with replacement when
// the text contains the keyword followed by a space. The first occurrence is
// not necessarily the space-terminated one: with "dueling due ", "due" inside
// "dueling" is replaced.
func KeywordRule(keyword, replacement string) Rule {
	trigger := keyword + " "
	return Rule{
		Name: "keyword:" + keyword,
		Match: func(text string) bool {
			return strings.Contains(text, trigger)
		},
		Replace: func(text string, _ time.Time) string {
			return strings.Replace(text, keyword, replacement, 1)
		},
	}
}

// RelativeDayRule replaces the first occurrence of word with the date now+offset days.
func RelativeDayRule(word string, offset int) Rule {
	trigger := word + " "
	return Rule{
		Name: "date:" + word,
		Match: func(text string) bool {
			return strings.Contains(text, trigger)
		},
		Replace: func(text string, now time.Time) string {
			return strings.Replace(text, word, datemath.Format(now.AddDate(0, 0, offset)), 1)
		},
	}
}

// OffsetRule replaces the first "in <N> <unit> " phrase with the date now+N
// units followed by a single space.
func OffsetRule() Rule {
	return Rule{
		Name:  "offset",
		Match: offsetRe.MatchString,
		Replace: func(text string, now time.Time) string {
			m := offsetRe.FindStringSubmatch(text)
			if m == nil {
				return text
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return text
			}
			unit, ok := datemath.ParseUnit(m[2])
			if !ok {
				return text
			}
			target, err := datemath.Add(now, n, unit)
			if err != nil {
				return text
			}
			return strings.Replace(text, m[0], datemath.Format(target)+" ", 1)
		},
	}
}

// WeekdayRule replaces the first space-terminated weekday name with the date
// of the next occurrence of that weekday. Today's weekday rolls to next week.
func WeekdayRule() Rule {
	return Rule{
		Name:  "weekday",
		Match: weekdayRe.MatchString,
		Replace: func(text string, now time.Time) string {
			m := weekdayRe.FindStringSubmatch(text)
			if m == nil {
				return text
			}
			target := isoWeekdayOf(m[1])
			if target == 0 {
				return text
			}
			return strings.Replace(text, m[1], datemath.Format(datemath.NextWeekday(now, target)), 1)
		},
	}
}

func isoWeekdayOf(name string) int {
	for i, n := range weekdayNames {
		if n == name {
			return i + 1
		}
	}
	return 0
}
