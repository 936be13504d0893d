package tool

import "github.com/thywilljoshua/docx-extract/internal/plugin"

const (
    Name = "word_extractor"

    ParamWordContent = "word_content"

    DocxMIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func (w *WordExtractor) Identity() plugin.Identity {
    return ToolIdentity()
}

func ToolIdentity() plugin.Identity {
    return plugin.Identity{
        Name: Name,
        Label: plugin.I18nObject{
            EnUS:   "Word Extractor",
            ZhHans: "Word 提取器",
        },
        Description: plugin.I18nObject{
            EnUS:   "Extract text and images from Word documents",
            ZhHans: "从Word文档中提取文本和图片",
        },
    }
}

// RuntimeParameters declares the single file parameter the tool accepts.
func (w *WordExtractor) RuntimeParameters() []plugin.ToolParameter {
    return RuntimeParameters()
}

func RuntimeParameters() []plugin.ToolParameter {
    return []plugin.ToolParameter{
        {
            Name: ParamWordContent,
            Label: plugin.I18nObject{
                EnUS:   "Word Content",
                ZhHans: "Word 内容",
            },
            HumanDescription: plugin.I18nObject{
                EnUS:   "Word file (.docx) to extract text and images from",
                ZhHans: "要提取文本和图片的Word文件(.docx)",
            },
            Type:        plugin.ParameterFile,
            Form:        plugin.FormForm,
            Required:    true,
            FileAccepts: []string{DocxMIMEType},
        },
    }
}
