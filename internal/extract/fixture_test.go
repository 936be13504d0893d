package extract

import (
    "archive/zip"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "testing"
)

const (
    nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
    nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// writeDocx builds a minimal .docx in t.TempDir() with one paragraph per
// entry of paras and the given word/media parts.
func writeDocx(t *testing.T, paras []string, media map[string][]byte) string {
    t.Helper()
    return writeFixture(t, fixture{body: paragraphsXML(paras...), media: media})
}

// fixture describes a synthetic package: body markup for word/document.xml,
// media parts, and any extra parts such as headers and footers.
type fixture struct {
    body  string
    media map[string][]byte
    parts map[string]string
}

func paragraphsXML(paras ...string) string {
    var sb strings.Builder
    for _, p := range paras {
        fmt.Fprintf(&sb, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, p)
    }
    return sb.String()
}

// tableXML renders one table row per entry of rows, one cell per string.
func tableXML(rows ...[]string) string {
    var sb strings.Builder
    sb.WriteString(`<w:tbl>`)
    for _, row := range rows {
        sb.WriteString(`<w:tr>`)
        for _, cell := range row {
            sb.WriteString(`<w:tc>` + paragraphsXML(cell) + `</w:tc>`)
        }
        sb.WriteString(`</w:tr>`)
    }
    sb.WriteString(`</w:tbl>`)
    return sb.String()
}

func edgeXML(root string, paras ...string) string {
    return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:%s xmlns:w="%s" xmlns:r="%s">%s</w:%s>`, root, nsW, nsR, paragraphsXML(paras...), root)
}

func writeFixture(t *testing.T, fx fixture) string {
    t.Helper()
    path := filepath.Join(t.TempDir(), "fixture.docx")
    f, err := os.Create(path)
    if err != nil {
        t.Fatalf("creating docx: %v", err)
    }
    w := zip.NewWriter(f)

    add := func(name string, data []byte) {
        fw, err := w.Create(name)
        if err != nil {
            t.Fatalf("adding %s: %v", name, err)
        }
        if _, err := fw.Write(data); err != nil {
            t.Fatalf("writing %s: %v", name, err)
        }
    }

    add("[Content_Types].xml", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`))
    add("_rels/.rels", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`))

    add("word/document.xml", []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="%s" xmlns:r="%s"><w:body>%s</w:body></w:document>`, nsW, nsR, fx.body)))

    var rels strings.Builder
    i := 1
    for name := range fx.media {
        fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/%s"/>`, i, name)
        i++
    }
    add("word/_rels/document.xml.rels", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`+rels.String()+`</Relationships>`))

    for name, data := range fx.media {
        add("word/media/"+name, data)
    }
    for name, data := range fx.parts {
        add(name, []byte(data))
    }

    if err := w.Close(); err != nil {
        t.Fatalf("closing zip: %v", err)
    }
    if err := f.Close(); err != nil {
        t.Fatalf("closing docx: %v", err)
    }
    return path
}
