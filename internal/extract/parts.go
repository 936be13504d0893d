package extract

import (
    "archive/zip"
    "fmt"
    "io"
    "regexp"
    "strings"
)

var (
    headerPart = regexp.MustCompile(`^word/header[0-9]*\.xml$`)
    footerPart = regexp.MustCompile(`^word/footer[0-9]*\.xml$`)
)

// edgeText reads the text of every header and footer part of the package, in
// archive order.
func edgeText(srcPath string) (headers, footers []string, err error) {
    r, err := zip.OpenReader(srcPath)
    if err != nil {
        return nil, nil, err
    }
    defer r.Close()

    for _, f := range r.File {
        var dst *[]string
        switch {
        case headerPart.MatchString(f.Name):
            dst = &headers
        case footerPart.MatchString(f.Name):
            dst = &footers
        default:
            continue
        }
        text, err := partText(f)
        if err != nil {
            return nil, nil, fmt.Errorf("%s: %w", f.Name, err)
        }
        if text != "" {
            *dst = append(*dst, text)
        }
    }
    return headers, footers, nil
}

func partText(f *zip.File) (string, error) {
    rc, err := f.Open()
    if err != nil {
        return "", err
    }
    defer rc.Close()
    data, err := io.ReadAll(rc)
    if err != nil {
        return "", err
    }
    return markupText(string(data))
}

// joinBlocks joins the non-empty blocks with a blank line.
func joinBlocks(blocks ...string) string {
    var kept []string
    for _, b := range blocks {
        if b != "" {
            kept = append(kept, b)
        }
    }
    return strings.Join(kept, "\n\n")
}
