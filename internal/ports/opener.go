package ports

// PreviewOpener defines the interface for showing a published page to the user
type PreviewOpener interface {
	// OpenFile opens the specified file in the system's default browser.
	// The path should be absolute.
	OpenFile(path string) error
}
