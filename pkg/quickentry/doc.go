// Package quickentry rewrites a single line of quick-entry shorthand into the
// inline task metadata syntax.
//
// A line such as "buy milk due tomorrow " becomes "buy milk 📅 2024-03-12 ".
// Rewriting is an ordered list of rules applied one after another, each rule
// seeing the output of the previous one:
//
//  1. role keywords (due, start, scheduled, done, high, medium, low, repeat,
//     recurring) become their markers;
//  2. today, tomorrow and yesterday become dates;
//  3. "in <N> <unit> " becomes a date;
//  4. a weekday name becomes the date of its next occurrence.
//
// Every token must be followed by a space to match, so a word is only rewritten
// once the user has finished typing it. Matching is case-sensitive and does not
// respect word boundaries: "follow " contains "low " and is rewritten. Callers
// rely on this matching set, so it is kept as is.
//
// The current time is always passed in by the caller. Transform is pure and
// safe for concurrent use.
package quickentry
