package extract

import (
    "encoding/xml"
    "errors"
    "io"
    "strings"

    "github.com/nguyenthenguyen/docx"
)

func xmlText(path string) (string, error) {
    r, err := docx.ReadDocxFile(path)
    if err != nil {
        return "", err
    }
    defer r.Close()
    return markupText(r.Editable().GetContent())
}

// markupText walks WordprocessingML and keeps the visible text. Each paragraph
// starts with a blank line, tabs and breaks become whitespace.
func markupText(content string) (string, error) {
    dec := xml.NewDecoder(strings.NewReader(content))
    var sb strings.Builder
    inText := false
    tabStops := 0
    for {
        tok, err := dec.Token()
        if errors.Is(err, io.EOF) {
            break
        }
        if err != nil {
            return "", err
        }
        switch t := tok.(type) {
        case xml.StartElement:
            switch t.Name.Local {
            case "p":
                sb.WriteString("\n\n")
            case "t":
                inText = true
            case "tabs":
                tabStops++
            case "tab":
                if tabStops == 0 {
                    sb.WriteByte('\t')
                }
            case "br", "cr":
                sb.WriteByte('\n')
            }
        case xml.EndElement:
            switch t.Name.Local {
            case "t":
                inText = false
            case "tabs":
                tabStops--
            }
        case xml.CharData:
            if inText {
                sb.Write(t)
            }
        }
    }
    return strings.TrimSpace(sb.String()), nil
}
