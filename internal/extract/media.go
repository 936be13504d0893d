package extract

import (
    "archive/zip"
    "io"
    "os"
    "path"
    "path/filepath"
    "strings"
)

const mediaFolder = "word/media/"

// dumpMedia copies every word/media part into outDir under its base name and
// returns how many files were written.
func dumpMedia(srcPath, outDir string) (int, error) {
    r, err := zip.OpenReader(srcPath)
    if err != nil {
        return 0, err
    }
    defer r.Close()

    n := 0
    for _, f := range r.File {
        if !strings.HasPrefix(f.Name, mediaFolder) || f.FileInfo().IsDir() {
            continue
        }
        name := path.Base(f.Name)
        if name == "." || name == "/" || name == ".." {
            continue
        }
        if err := copyPart(f, filepath.Join(outDir, name)); err != nil {
            return n, err
        }
        n++
    }
    return n, nil
}

func copyPart(f *zip.File, dst string) error {
    rc, err := f.Open()
    if err != nil {
        return err
    }
    defer rc.Close()
    out, err := os.Create(dst)
    if err != nil {
        return err
    }
    if _, err := io.Copy(out, rc); err != nil {
        out.Close()
        return err
    }
    return out.Close()
}
