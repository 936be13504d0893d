package extract

import (
    "os"
    "strings"

    "github.com/fumiama/go-docx"
)

func goDocxText(path string) (string, error) {
    f, err := os.Open(path)
    if err != nil {
        return "", err
    }
    defer f.Close()
    info, err := f.Stat()
    if err != nil {
        return "", err
    }
    doc, err := docx.Parse(f, info.Size())
    if err != nil {
        return "", err
    }

    var sb strings.Builder
    for _, it := range doc.Document.Body.Items {
        switch t := it.(type) {
        case *docx.Paragraph:
            writeParagraph(&sb, t)
        case *docx.Table:
            writeTable(&sb, t)
        }
    }
    return strings.TrimSpace(sb.String()), nil
}

// writeParagraph starts every paragraph on a blank line, the same layout the
// xml engine produces.
func writeParagraph(sb *strings.Builder, p *docx.Paragraph) {
    sb.WriteString("\n\n")
    sb.WriteString(paragraphText(p))
}

// writeTable flattens a table cell by cell. A cell's nested tables follow its
// own paragraphs.
func writeTable(sb *strings.Builder, t *docx.Table) {
    for _, row := range t.TableRows {
        for _, cell := range row.TableCells {
            for _, p := range cell.Paragraphs {
                writeParagraph(sb, p)
            }
            for _, nested := range cell.Tables {
                writeTable(sb, nested)
            }
        }
    }
}

// paragraphText renders runs and hyperlinks as plain text. Drawings are left
// out; their media is dumped separately.
func paragraphText(p *docx.Paragraph) string {
    var sb strings.Builder
    for _, c := range p.Children {
        switch o := c.(type) {
        case *docx.Run:
            writeRun(&sb, o)
        case *docx.Hyperlink:
            before := sb.Len()
            writeRun(&sb, &o.Run)
            if sb.Len() == before {
                sb.WriteString(o.Run.InstrText)
            }
        }
    }
    return sb.String()
}

func writeRun(sb *strings.Builder, r *docx.Run) {
    for _, c := range r.Children {
        switch x := c.(type) {
        case *docx.Text:
            sb.WriteString(x.Text)
        case *docx.Tab:
            sb.WriteByte('\t')
        case *docx.BarterRabbet:
            sb.WriteByte('\n')
        }
    }
}
