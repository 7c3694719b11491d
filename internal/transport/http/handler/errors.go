package handler

const (
	errInternalServer = "Internal server error"
	errUnknownUnit    = "Unknown unit; use seconds, minutes, hours, days, weeks, months or years"
	errInvalidN       = "Magnitude must be a whole number"
	errInvalidAt      = "Query parameter at must be an RFC 3339 timestamp"
	errInvalidDate    = "Date must be formatted YYYY-MM-DD"
	errUnrenderable   = "Result falls outside years 0000-9999 and cannot be rendered"
)
