// Package logging defines shared structured log field names.
package logging

// Common zap field names.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldType      = "type"
	FieldFile      = "file"
	FieldLine      = "line"
	FieldUsername  = "username"
	FieldMovieID   = "movieId"
	FieldSignal    = "signal"
)
