// Package form implements the registration form engine: a field store whose
// validity is recomputed on demand through pkg/validation, selection state for
// the event-type chips and the course dropdown, a go-theme backed dark/light
// toggle, the derived completion and slider calculators, and the submission
// gate that turns a valid snapshot into a model.Record.
//
// The engine is synchronous and event driven. Every inbound call completes
// before the next one is processed; an Engine is owned by a single form
// session and is not safe for concurrent use.
package form
