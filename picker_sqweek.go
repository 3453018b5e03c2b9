package filedialog

import (
	"errors"

	"github.com/sqweek/dialog"
)

// SqweekPicker is an alternate backend built on sqweek/dialog. It has no
// multi-selection support; PickFiles and PickFolders return ErrUnsupported.
type SqweekPicker struct{}

func (SqweekPicker) PickFile(o PickerOptions) (string, error) {
	path, err := sqweekFileBuilder(o).Load()
	return path, mapSqweekErr(err)
}

func (SqweekPicker) PickFiles(o PickerOptions) ([]string, error) {
	return nil, ErrUnsupported
}

func (SqweekPicker) SaveFile(o PickerOptions) (string, error) {
	path, err := sqweekFileBuilder(o).Save()
	return path, mapSqweekErr(err)
}

func (SqweekPicker) PickFolder(o PickerOptions) (string, error) {
	b := dialog.Directory()
	if o.Title != "" {
		b = b.Title(o.Title)
	}
	if o.StartDir != "" {
		b = b.SetStartDir(o.StartDir)
	}
	path, err := b.Browse()
	return path, mapSqweekErr(err)
}

func (SqweekPicker) PickFolders(o PickerOptions) ([]string, error) {
	return nil, ErrUnsupported
}

func sqweekFileBuilder(o PickerOptions) *dialog.FileBuilder {
	b := dialog.File()
	if o.Title != "" {
		b = b.Title(o.Title)
	}
	if o.StartDir != "" {
		b = b.SetStartDir(o.StartDir)
	}
	if o.FileName != "" {
		b = b.SetStartFile(o.FileName)
	}
	for _, f := range o.Filters {
		b = b.Filter(f.Label, f.Extensions...)
	}
	return b
}

func mapSqweekErr(err error) error {
	if errors.Is(err, dialog.ErrCancelled) {
		return ErrCanceled
	}
	return err
}
