package ai

import "context"

// Captioner describes an extracted image in a short line of alt text.
type Captioner interface {
    Caption(ctx context.Context, data []byte, mimeType string) (string, error)
}

type Noop struct{}

func (Noop) Caption(ctx context.Context, data []byte, mimeType string) (string, error) {
    return "", nil
}
