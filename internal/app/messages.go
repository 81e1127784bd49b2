package app

// ExportedMsg reports the outcome of a diagram export.
type ExportedMsg struct {
	Files []string
	Err   error
}
