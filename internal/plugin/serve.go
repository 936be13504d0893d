package plugin

import (
    "bufio"
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"

    "github.com/google/uuid"

    "github.com/thywilljoshua/docx-extract/internal/logging"
)

const (
    ActionInvoke            = "invoke"
    ActionRuntimeParameters = "get_runtime_parameters"

    EventMessage    = "message"
    EventParameters = "parameters"
    EventError      = "error"
    EventEnd        = "end"
)

// Request is one line read from the host.
type Request struct {
    ID         string                     `json:"id"`
    Action     string                     `json:"action"`
    Parameters map[string]json.RawMessage `json:"parameters,omitempty"`
}

// Response is one line written back to the host.
type Response struct {
    ID    string        `json:"id"`
    Event string        `json:"event"`
    Data  any           `json:"data,omitempty"`
    Error *ErrorPayload `json:"error,omitempty"`
}

type ErrorPayload struct {
    Kind    ErrorKind `json:"kind"`
    Message string    `json:"message"`
}

// wireFile is the JSON shape of a file parameter.
type wireFile struct {
    Type     string `json:"type"`
    Filename string `json:"filename"`
    MIMEType string `json:"mime_type"`
    Blob     []byte `json:"blob"`
}

// Server drives a Tool over newline-delimited JSON.
type Server struct {
    tool Tool
    log  *logging.Logger
}

func NewServer(tool Tool, log *logging.Logger) *Server {
    if log == nil {
        log = logging.Nop()
    }
    return &Server{tool: tool, log: log}
}

// Serve handles requests from r until EOF or ctx is done. Requests are
// handled one at a time; every request ends with an "end" event. Lines are
// read on a separate goroutine so cancellation is seen while r is idle.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
    lines := make(chan readResult)
    done := make(chan struct{})
    defer close(done)
    go readLines(r, lines, done)

    enc := json.NewEncoder(w)
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        var res readResult
        select {
        case <-ctx.Done():
            return ctx.Err()
        case res = <-lines:
        }
        if len(bytes.TrimSpace(res.line)) > 0 {
            if herr := s.handleLine(ctx, res.line, enc); herr != nil {
                return herr
            }
        }
        if errors.Is(res.err, io.EOF) {
            return nil
        }
        if res.err != nil {
            return fmt.Errorf("reading request: %w", res.err)
        }
    }
}

type readResult struct {
    line []byte
    err  error
}

// readLines sends each line of r to out until a read fails or done closes.
func readLines(r io.Reader, out chan<- readResult, done <-chan struct{}) {
    br := bufio.NewReader(r)
    for {
        line, err := br.ReadBytes('\n')
        select {
        case out <- readResult{line: line, err: err}:
        case <-done:
            return
        }
        if err != nil {
            return
        }
    }
}

func (s *Server) handleLine(ctx context.Context, line []byte, enc *json.Encoder) error {
    var req Request
    if err := json.Unmarshal(line, &req); err != nil {
        id := uuid.NewString()
        s.log.Warn().Str("request_id", id).Err(err).Msg("malformed request")
        if werr := writeError(enc, id, InvalidArgument("malformed request", err)); werr != nil {
            return werr
        }
        return enc.Encode(Response{ID: id, Event: EventEnd})
    }
    if req.ID == "" {
        req.ID = uuid.NewString()
    }
    log := s.log.With("request_id", req.ID)

    if err := s.handle(ctx, req, enc, log); err != nil {
        return err
    }
    return enc.Encode(Response{ID: req.ID, Event: EventEnd})
}

func (s *Server) handle(ctx context.Context, req Request, enc *json.Encoder, log *logging.Logger) error {
    switch req.Action {
    case ActionRuntimeParameters:
        return enc.Encode(Response{ID: req.ID, Event: EventParameters, Data: s.tool.RuntimeParameters()})
    case ActionInvoke, "":
    default:
        return writeError(enc, req.ID, InvalidArgument(fmt.Sprintf("unknown action %q", req.Action), nil))
    }

    params, err := DecodeParameters(req.Parameters)
    if err != nil {
        return writeError(enc, req.ID, InvalidArgument("decoding parameters", err))
    }

    stream, err := s.tool.Invoke(ctx, params)
    if err != nil {
        log.Warn().Str("kind", string(KindOf(err))).Err(err).Msg("invocation failed")
        return writeError(enc, req.ID, err)
    }
    defer stream.Close()

    n := 0
    for msg, err := range stream.All() {
        if err != nil {
            log.Warn().Err(err).Int("messages", n).Msg("stream failed")
            return writeError(enc, req.ID, err)
        }
        if err := enc.Encode(Response{ID: req.ID, Event: EventMessage, Data: msg}); err != nil {
            return fmt.Errorf("writing message: %w", err)
        }
        n++
    }
    log.Debug().Int("messages", n).Msg("invocation complete")
    return nil
}

func writeError(enc *json.Encoder, id string, err error) error {
    return enc.Encode(Response{
        ID:    id,
        Event: EventError,
        Error: &ErrorPayload{Kind: KindOf(err), Message: err.Error()},
    })
}

// DecodeParameters turns raw JSON parameters into Go values. Objects tagged
// {"type": "file"} become File values; everything else decodes as plain JSON.
func DecodeParameters(raw map[string]json.RawMessage) (Parameters, error) {
    params := make(Parameters, len(raw))
    for name, value := range raw {
        var probe struct {
            Type string `json:"type"`
        }
        if len(value) > 0 && value[0] == '{' {
            if err := json.Unmarshal(value, &probe); err != nil {
                return nil, fmt.Errorf("parameter %s: %w", name, err)
            }
        }
        if probe.Type == "file" {
            var wf wireFile
            if err := json.Unmarshal(value, &wf); err != nil {
                return nil, fmt.Errorf("parameter %s: %w", name, err)
            }
            params[name] = File{Filename: wf.Filename, MIMEType: wf.MIMEType, Blob: wf.Blob}
            continue
        }
        var v any
        if err := json.Unmarshal(value, &v); err != nil {
            return nil, fmt.Errorf("parameter %s: %w", name, err)
        }
        params[name] = v
    }
    return params, nil
}
