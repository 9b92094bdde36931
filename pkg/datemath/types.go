package datemath

// DateFormat is the YYYY-MM-DD layout used by the task syntax.
const DateFormat = "2006-01-02"

// Unit is a calendar unit used by relative offsets.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)
