package llm

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// ImagePayload carries decoded image bytes plus their detected media type,
// ready to be attached to a provider call in whatever encoding that provider
// wants.
type ImagePayload struct {
	Data []byte
	MIME string
}

// Base64 returns the payload re-encoded as standard base64.
func (p *ImagePayload) Base64() string {
	return base64.StdEncoding.EncodeToString(p.Data)
}

// DataURL returns the payload as a data URL for OpenAI-style image parts.
func (p *ImagePayload) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", p.MIME, p.Base64())
}

// DecodeImage accepts a raw base64 string or a data URL
// (data:image/png;base64,...) and returns the decoded payload. It rejects
// input that does not decode to image bytes.
func DecodeImage(s string) (*ImagePayload, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty image payload")
	}
	if strings.HasPrefix(s, "data:") {
		// data:image/png;base64,XXXX
		_, rest, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("malformed data URL")
		}
		s = rest
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return ImageFromBytes(data)
}

// ImageFromBytes wraps raw bytes, sniffing the media type and rejecting
// non-image content.
func ImageFromBytes(data []byte) (*ImagePayload, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("payload is %s, not an image", mime)
	}
	return &ImagePayload{Data: data, MIME: mime}, nil
}
