// Package tool implements the word_extractor plugin tool: text and images out
// of an uploaded .docx file, one message each.
package tool

import (
    "context"
    "errors"
    "fmt"
    "io"
    "os"
    "path/filepath"

    "github.com/google/uuid"

    "github.com/thywilljoshua/docx-extract/internal/ai"
    "github.com/thywilljoshua/docx-extract/internal/logging"
    "github.com/thywilljoshua/docx-extract/internal/plugin"
)

const defaultFilename = "document"

var (
    ErrInvalidContent = errors.New("Invalid Word content format. Expected File object.")
    ErrFileTooLarge   = errors.New("Word content exceeds maximum size")
)

// Extractor is the routine that reads a document from srcPath, returns its
// text and leaves any embedded images as files in outDir.
type Extractor interface {
    Process(ctx context.Context, srcPath, outDir string) (string, error)
}

type Options struct {
    // ScratchDir holds per-invocation temp files; empty means the OS default.
    ScratchDir string
    // MaxFileBytes rejects larger uploads; zero disables the check.
    MaxFileBytes int64
    Captioner    ai.Captioner
    Logger       *logging.Logger
}

type WordExtractor struct {
    extractor Extractor
    opts      Options
    log       *logging.Logger
}

var _ plugin.Tool = (*WordExtractor)(nil)

func NewWordExtractor(extractor Extractor, opts Options) *WordExtractor {
    if opts.Captioner == nil {
        opts.Captioner = ai.Noop{}
    }
    log := opts.Logger
    if log == nil {
        log = logging.Nop()
    }
    return &WordExtractor{extractor: extractor, opts: opts, log: log.With("tool", Name)}
}

func invalidValue(err error) error {
    return plugin.InvalidArgument("Invalid value encountered", err)
}

func processingError(err error) error {
    return plugin.Processing("Error extracting from Word document", err)
}

// Invoke validates the word_content parameter, extracts the document into
// scratch space and returns a stream yielding the text first and then one
// blob per image. Closing the stream removes the scratch space; on error
// nothing is left behind.
func (w *WordExtractor) Invoke(ctx context.Context, params plugin.Parameters) (*plugin.Stream, error) {
    file, ok := params.FileParam(ParamWordContent)
    if !ok {
        return nil, invalidValue(ErrInvalidContent)
    }
    if limit := w.opts.MaxFileBytes; limit > 0 && int64(len(file.Blob)) > limit {
        return nil, invalidValue(fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(file.Blob), limit))
    }

    original := file.Filename
    if original == "" {
        original = defaultFilename
    }
    log := w.log.With("invocation_id", uuid.NewString()).With("filename", original)

    ws, err := newWorkspace(w.opts.ScratchDir, file.Blob)
    if err != nil {
        return nil, processingError(err)
    }

    text, err := w.extractor.Process(ctx, ws.docPath, ws.imageDir)
    if err != nil {
        log.Error().Err(err).Msg("extraction failed")
        return nil, processingError(errors.Join(err, ws.release()))
    }

    images, err := listImages(ws.imageDir)
    if err != nil {
        return nil, processingError(errors.Join(err, ws.release()))
    }
    log.Info().Int("bytes", len(file.Blob)).Int("images", len(images)).Msg("document extracted")

    e := &emitter{
        text:      text,
        images:    images,
        original:  original,
        captioner: w.opts.Captioner,
        log:       log,
    }
    return plugin.NewStream(ctx, e.next, ws.release), nil
}

// emitter yields the messages of one invocation on demand.
type emitter struct {
    text     string
    textSent bool
    images   []string
    idx      int

    original  string
    captioner ai.Captioner
    log       *logging.Logger
}

func (e *emitter) next(ctx context.Context) (plugin.Message, error) {
    if !e.textSent {
        e.textSent = true
        return plugin.NewTextMessage(e.text), nil
    }
    if e.idx >= len(e.images) {
        return plugin.Message{}, io.EOF
    }
    i := e.idx
    e.idx++

    msg, err := e.imageMessage(ctx, e.images[i], i+1)
    if err != nil {
        e.log.Warn().Err(err).Int("image", i+1).Msg("image skipped")
        return plugin.NewTextMessage(fmt.Sprintf("Error processing image %d: %v", i+1, err)), nil
    }
    return msg, nil
}

func (e *emitter) imageMessage(ctx context.Context, path string, index int) (plugin.Message, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return plugin.Message{}, err
    }
    mimeType := mimeFromExt(filepath.Ext(path))
    msg := plugin.NewBlobMessage(data, mimeType, imageFileName(e.original, path, index))

    caption, err := e.captioner.Caption(ctx, data, mimeType)
    if err != nil {
        e.log.Warn().Err(err).Int("image", index).Msg("caption failed")
    } else if caption != "" {
        msg.Meta["description"] = caption
    }
    return msg, nil
}
