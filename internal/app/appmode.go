package app

// AppMode selects the top-level screen.
type AppMode int

const (
	ModeConfigure AppMode = iota
	ModePreview
)
