package filedialog

import "errors"

var (
	// ErrCanceled reports that the user dismissed a dialog without making
	// a choice.
	ErrCanceled = errors.New("filedialog: dialog canceled")

	// ErrUnsupported reports that the active picker backend cannot perform
	// the requested operation.
	ErrUnsupported = errors.New("filedialog: operation not supported by picker")
)

// Filter restricts the files a dialog offers. It is passed through to the
// native dialog untouched.
type Filter struct {
	// Label is the display name of the filter, shown on platforms that
	// support it.
	Label string

	// Extensions lists allowed file extensions without the leading dot.
	Extensions []string
}

// PickerOptions carries the builder state into a picker backend.
type PickerOptions struct {
	Title    string
	StartDir string
	FileName string
	Filters  []Filter
}

// Picker shows native dialogs and blocks until the user decides. A dismissed
// dialog returns ErrCanceled. Implementations must be safe for concurrent
// use; every request runs on its own goroutine.
type Picker interface {
	// PickFile shows an open dialog for a single file.
	PickFile(o PickerOptions) (string, error)

	// PickFiles shows an open dialog allowing multiple files.
	PickFiles(o PickerOptions) ([]string, error)

	// SaveFile shows a save dialog and returns the chosen target path.
	// It does not write anything.
	SaveFile(o PickerOptions) (string, error)

	// PickFolder shows a directory chooser for a single directory.
	PickFolder(o PickerOptions) (string, error)

	// PickFolders shows a directory chooser allowing multiple directories.
	PickFolders(o PickerOptions) ([]string, error)
}
