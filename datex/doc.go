// Package datex provides small date-arithmetic helpers wrapping the standard
// [time] package: the Go rendition of the usual `date -d "+3 days"` shell
// wrappers.
//
//	datex.AddDays(t, 3)
//	datex.DaysBetween(a, b)      // whole calendar days, sign follows a→b
//	datex.StartOfDay(t)          // midnight in t's location
//	datex.FormatISO(t)           // "2024-07-01T12:30:00Z"
//
// All helpers are pure: they never read the clock. Pass [time.Now] results
// in explicitly so call sites stay testable.
//
// Portability note: AddMonths/AddYears normalize overflow the way
// [time.Time.AddDate] does — Jan 31 + 1 month is Mar 2/3, not Feb 28 —
// matching GNU date rather than "clamp to month end" libraries.
package datex
