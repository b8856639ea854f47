package view

// View is an observer that renders itself from bookmark state. Renders are
// idempotent full redraws, so a superseded render request can simply be
// absorbed into the one in flight.
type View interface {
	Name() string
	Render() error
}
