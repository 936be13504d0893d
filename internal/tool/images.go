package tool

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"
)

var imageMIMETypes = map[string]string{
    ".png":  "image/png",
    ".jpg":  "image/jpeg",
    ".jpeg": "image/jpeg",
    ".gif":  "image/gif",
    ".bmp":  "image/bmp",
}

// mimeFromExt maps an image extension to its MIME type, defaulting to PNG.
func mimeFromExt(ext string) string {
    if mt, ok := imageMIMETypes[strings.ToLower(ext)]; ok {
        return mt
    }
    return "image/png"
}

func isSupportedImage(name string) bool {
    _, ok := imageMIMETypes[strings.ToLower(filepath.Ext(name))]
    return ok
}

// listImages returns the supported image files directly inside dir, in
// directory-listing order.
func listImages(dir string) ([]string, error) {
    entries, err := os.ReadDir(dir)
    if err != nil {
        return nil, err
    }
    var out []string
    for _, e := range entries {
        if !e.Type().IsRegular() || !isSupportedImage(e.Name()) {
            continue
        }
        out = append(out, filepath.Join(dir, e.Name()))
    }
    return out, nil
}

// fileStem drops the last dot-suffix of name, if any.
func fileStem(name string) string {
    if i := strings.LastIndex(name, "."); i >= 0 {
        return name[:i]
    }
    return name
}

// imageFileName builds <stem>_image_<index><ext> for the index-th image (1-based)
// extracted from original, keeping the extension of the source image.
func imageFileName(original, imagePath string, index int) string {
    ext := strings.ToLower(filepath.Ext(imagePath))
    if ext == "" {
        ext = ".png"
    }
    return fmt.Sprintf("%s_image_%d%s", fileStem(original), index, ext)
}
