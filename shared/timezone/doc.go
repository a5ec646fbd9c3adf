// Package timezone pins every timestamp the API produces or parses to the configured
// APP_TIMEZONE (an IANA name such as "Asia/Riyadh"), falling back to UTC.
//
//	now := timezone.Now()
//	day, err := timezone.Parse(time.DateOnly, "2025-03-01")
//	monthStart := timezone.StartOfMonth(now)
//
// The location is loaded once when the package is imported.
package timezone
