// Package timezone resolves wall-clock time in the hotel's configured timezone.
//
// The occupancy engine never reads the clock. Callers at the boundary (HTTP handlers, CLI)
// resolve the reference date once with Today and pass it down explicitly:
//
//	today := timezone.Today()              // calendar date in APP_TIMEZONE, as midnight UTC
//	now := timezone.Now()                  // current instant in APP_TIMEZONE
//	formatted := timezone.Format(t, layout)
//
// The timezone is configured via the APP_TIMEZONE environment variable using IANA names
// such as "UTC" or "America/Argentina/Buenos_Aires", and is initialized when the package is imported.
package timezone
