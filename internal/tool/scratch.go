package tool

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
)

// workspace is the scratch state of one invocation: a copy of the uploaded
// document and a directory the extraction routine fills with media.
type workspace struct {
    docPath  string
    imageDir string
}

func newWorkspace(base string, blob []byte) (*workspace, error) {
    f, err := os.CreateTemp(base, "docx-extract-*.docx")
    if err != nil {
        return nil, fmt.Errorf("creating scratch file: %w", err)
    }
    ws := &workspace{docPath: f.Name()}
    if _, err := f.Write(blob); err != nil {
        f.Close()
        return nil, errors.Join(fmt.Errorf("writing scratch file: %w", err), ws.release())
    }
    if err := f.Close(); err != nil {
        return nil, errors.Join(fmt.Errorf("writing scratch file: %w", err), ws.release())
    }

    dir, err := os.MkdirTemp(base, "docx-extract-media-*")
    if err != nil {
        return nil, errors.Join(fmt.Errorf("creating scratch directory: %w", err), ws.release())
    }
    ws.imageDir = dir
    return ws, nil
}

// release removes the scratch directory and file. Missing paths are not an
// error.
func (w *workspace) release() error {
    var errs []error
    if w.imageDir != "" {
        if err := os.RemoveAll(w.imageDir); err != nil {
            errs = append(errs, err)
        }
    }
    if w.docPath != "" {
        if err := os.Remove(w.docPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
            errs = append(errs, err)
        }
    }
    return errors.Join(errs...)
}
