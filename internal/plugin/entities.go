package plugin

import "context"

// File is an uploaded file handle supplied by the host.
type File struct {
    Filename string `json:"filename,omitempty"`
    MIMEType string `json:"mime_type,omitempty"`
    Blob     []byte `json:"blob"`
}

// Parameters is the bundle of named arguments for one invocation.
type Parameters map[string]any

// FileParam returns the named parameter as a file handle. Both File values and
// pointers are accepted; anything else reports false.
func (p Parameters) FileParam(name string) (File, bool) {
    switch v := p[name].(type) {
    case File:
        return v, true
    case *File:
        if v == nil {
            return File{}, false
        }
        return *v, true
    default:
        return File{}, false
    }
}

type MessageType string

const (
    MessageText MessageType = "text"
    MessageBlob MessageType = "blob"
)

// Message is one unit of a tool's response stream.
type Message struct {
    Type MessageType    `json:"type"`
    Text string         `json:"text,omitempty"`
    Blob []byte         `json:"blob,omitempty"`
    Meta map[string]any `json:"meta,omitempty"`
}

func NewTextMessage(text string) Message {
    return Message{Type: MessageText, Text: text}
}

// NewBlobMessage builds a binary message carrying the mime type and file name
// in its meta.
func NewBlobMessage(data []byte, mimeType, fileName string) Message {
    return Message{
        Type: MessageBlob,
        Blob: data,
        Meta: map[string]any{
            "mime_type": mimeType,
            "file_name": fileName,
        },
    }
}

// I18nObject carries a label in the locales the host UI renders.
type I18nObject struct {
    EnUS   string `json:"en_US"`
    ZhHans string `json:"zh_Hans,omitempty"`
}

type ParameterType string

const (
    ParameterString ParameterType = "string"
    ParameterNumber ParameterType = "number"
    ParameterBool   ParameterType = "boolean"
    ParameterFile   ParameterType = "file"
    ParameterFiles  ParameterType = "files"
)

type ParameterForm string

const (
    FormSchema ParameterForm = "schema"
    FormForm   ParameterForm = "form"
    FormLLM    ParameterForm = "llm"
)

// ToolParameter describes one argument for the host's parameter-collection UI.
type ToolParameter struct {
    Name             string        `json:"name"`
    Label            I18nObject    `json:"label"`
    HumanDescription I18nObject    `json:"human_description"`
    Type             ParameterType `json:"type"`
    Form             ParameterForm `json:"form"`
    Required         bool          `json:"required"`
    FileAccepts      []string      `json:"file_accepts,omitempty"`
}

// Identity names a tool for the host.
type Identity struct {
    Name        string     `json:"name"`
    Author      string     `json:"author,omitempty"`
    Label       I18nObject `json:"label"`
    Description I18nObject `json:"description"`
}

// Tool is the contract a host runtime drives.
type Tool interface {
    Identity() Identity
    RuntimeParameters() []ToolParameter
    Invoke(ctx context.Context, params Parameters) (*Stream, error)
}
