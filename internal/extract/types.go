package extract

import (
    "fmt"
    "strings"
)

// Engine selects the library used to read document text.
type Engine string

const (
    // EngineGoDocx reads the body through fumiama/go-docx.
    EngineGoDocx Engine = "godocx"
    // EngineXML reads word/document.xml through nguyenthenguyen/docx and walks
    // the markup directly.
    EngineXML Engine = "xml"
)

// Engines lists the supported engines, default first.
var Engines = []Engine{EngineGoDocx, EngineXML}

// ParseEngine resolves an engine name; the empty string selects the default.
func ParseEngine(name string) (Engine, error) {
    name = strings.ToLower(strings.TrimSpace(name))
    if name == "" {
        return EngineGoDocx, nil
    }
    for _, e := range Engines {
        if string(e) == name {
            return e, nil
        }
    }
    return "", fmt.Errorf("unknown extraction engine %q", name)
}

// Result summarises one Process call for logging.
type Result struct {
    Text   string
    Images int // media parts written to the output directory
}
