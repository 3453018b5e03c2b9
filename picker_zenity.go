package filedialog

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"
)

// NativePicker is the default picker backend, built on ncruces/zenity. It
// covers the full Picker surface including multi selection and needs no cgo.
type NativePicker struct{}

func (NativePicker) PickFile(o PickerOptions) (string, error) {
	path, err := zenity.SelectFile(zenityOptions(o)...)
	return path, mapZenityErr(err)
}

func (NativePicker) PickFiles(o PickerOptions) ([]string, error) {
	paths, err := zenity.SelectFileMultiple(zenityOptions(o)...)
	return paths, mapZenityErr(err)
}

func (NativePicker) SaveFile(o PickerOptions) (string, error) {
	opts := append(zenityOptions(o), zenity.ConfirmOverwrite())
	path, err := zenity.SelectFileSave(opts...)
	return path, mapZenityErr(err)
}

func (NativePicker) PickFolder(o PickerOptions) (string, error) {
	opts := append(zenityOptions(o), zenity.Directory())
	path, err := zenity.SelectFile(opts...)
	return path, mapZenityErr(err)
}

func (NativePicker) PickFolders(o PickerOptions) ([]string, error) {
	opts := append(zenityOptions(o), zenity.Directory())
	paths, err := zenity.SelectFileMultiple(opts...)
	return paths, mapZenityErr(err)
}

func zenityOptions(o PickerOptions) []zenity.Option {
	var opts []zenity.Option
	if o.Title != "" {
		opts = append(opts, zenity.Title(o.Title))
	}
	// zenity takes the starting directory and suggested file name as one
	// combined path.
	switch {
	case o.StartDir != "" && o.FileName != "":
		opts = append(opts, zenity.Filename(filepath.Join(o.StartDir, o.FileName)))
	case o.StartDir != "":
		opts = append(opts, zenity.Filename(o.StartDir+string(filepath.Separator)))
	case o.FileName != "":
		opts = append(opts, zenity.Filename(o.FileName))
	}
	if len(o.Filters) > 0 {
		filters := make(zenity.FileFilters, 0, len(o.Filters))
		for _, f := range o.Filters {
			patterns := make([]string, 0, len(f.Extensions))
			for _, ext := range f.Extensions {
				patterns = append(patterns, "*."+ext)
			}
			filters = append(filters, zenity.FileFilter{
				Name:     f.Label,
				Patterns: patterns,
				CaseFold: true,
			})
		}
		opts = append(opts, filters)
	}
	return opts
}

func mapZenityErr(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return ErrCanceled
	}
	return err
}
