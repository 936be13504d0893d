package ai

import (
    "context"
    "errors"
    "fmt"
    "strings"

    genai "google.golang.org/genai"
)

const captionPrompt = "Describe this image for alt text in <= 12 words, factual, no embellishment."

type Gemini struct {
    client *genai.Client
    model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
    if apiKey == "" {
        return nil, errors.New("missing GOOGLE_API_KEY")
    }
    if model == "" {
        model = "gemini-2.5-flash"
    }
    c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
    if err != nil {
        return nil, err
    }
    return &Gemini{client: c, model: model}, nil
}

// Caption asks the model for alt text.
func (g *Gemini) Caption(ctx context.Context, data []byte, mimeType string) (string, error) {
    if g == nil || g.client == nil || len(data) == 0 {
        return "", nil
    }
    if mimeType == "" {
        mimeType = "image/png"
    }
    prompt := &genai.Content{
        Role: genai.RoleUser,
        Parts: []*genai.Part{
            {Text: captionPrompt},
            {InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
        },
    }
    res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{prompt}, nil)
    if err != nil {
        return "", fmt.Errorf("generating caption: %w", err)
    }
    return strings.TrimSpace(res.Text()), nil
}
