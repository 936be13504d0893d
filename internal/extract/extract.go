// Package extract turns a .docx file into plain text and loose media files.
package extract

import (
    "context"
    "fmt"
    "os"
)

// Extractor reads a document with the configured engine and dumps its media.
type Extractor struct {
    engine Engine
}

func New(engine Engine) (*Extractor, error) {
    e, err := ParseEngine(string(engine))
    if err != nil {
        return nil, err
    }
    return &Extractor{engine: e}, nil
}

func (e *Extractor) Engine() Engine { return e.engine }

// Process returns the plain text of the document at srcPath, headers first and
// footers last, and writes every embedded media part into outDir as a side
// effect.
func (e *Extractor) Process(ctx context.Context, srcPath, outDir string) (string, error) {
    res, err := e.Run(ctx, srcPath, outDir)
    return res.Text, err
}

// Run is Process with a count of the media parts written.
func (e *Extractor) Run(ctx context.Context, srcPath, outDir string) (Result, error) {
    if err := ctx.Err(); err != nil {
        return Result{}, err
    }
    if outDir != "" {
        if err := os.MkdirAll(outDir, 0o755); err != nil {
            return Result{}, err
        }
    }

    var text string
    var err error
    switch e.engine {
    case EngineXML:
        text, err = xmlText(srcPath)
    default:
        text, err = goDocxText(srcPath)
    }
    if err != nil {
        return Result{}, fmt.Errorf("reading %s text: %w", e.engine, err)
    }
    headers, footers, err := edgeText(srcPath)
    if err != nil {
        return Result{}, fmt.Errorf("reading headers and footers: %w", err)
    }
    text = joinBlocks(append(append(headers, text), footers...)...)

    if err := ctx.Err(); err != nil {
        return Result{}, err
    }
    n := 0
    if outDir != "" {
        if n, err = dumpMedia(srcPath, outDir); err != nil {
            return Result{}, fmt.Errorf("extracting media: %w", err)
        }
    }
    return Result{Text: text, Images: n}, nil
}
