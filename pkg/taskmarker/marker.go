// Package taskmarker holds the canonical inline-metadata markers of the
// markdown task syntax (due, start, scheduled, done, recurrence, priority).
package taskmarker

// Role is a task metadata role that has exactly one canonical marker.
type Role int

const (
	Due Role = iota
	Start
	Scheduled
	Done
	Recurrence
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// markers is indexed by Role. No marker is a substring of another.
var markers = [...]string{
	Due:            "📅",
	Start:          "🛫",
	Scheduled:      "⏳",
	Done:           "✅",
	Recurrence:     "🔁",
	PriorityHigh:   "⏫",
	PriorityMedium: "🔼",
	PriorityLow:    "🔽",
}

var names = [...]string{
	Due:            "due",
	Start:          "start",
	Scheduled:      "scheduled",
	Done:           "done",
	Recurrence:     "recurrence",
	PriorityHigh:   "priority_high",
	PriorityMedium: "priority_medium",
	PriorityLow:    "priority_low",
}

// MarkerFor returns the canonical marker of role.
func MarkerFor(role Role) string {
	if !role.Valid() {
		return ""
	}
	return markers[role]
}

// Roles returns every role in declaration order.
func Roles() []Role {
	roles := make([]Role, len(markers))
	for i := range markers {
		roles[i] = Role(i)
	}
	return roles
}

// DateRoles returns the roles whose marker is followed by a YYYY-MM-DD date.
func DateRoles() []Role {
	return []Role{Due, Start, Scheduled, Done}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r >= 0 && int(r) < len(markers)
}

func (r Role) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return names[r]
}
