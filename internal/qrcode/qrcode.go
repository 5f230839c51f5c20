// Package qrcode renders reservation summaries into scannable proof
// artifacts. The Generator interface is the boundary to the rendering
// collaborator; the rest of the system treats the result as opaque.
package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

type Generator interface {
	Generate(summary any) (string, error)
}

type PNGGenerator struct {
	size int
}

func NewPNGGenerator(size int) *PNGGenerator {
	return &PNGGenerator{
		size: size,
	}
}

// Generate encodes the JSON form of summary into a PNG QR code and returns
// it as a base64 data URL.
func (g *PNGGenerator) Generate(summary any) (string, error) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR payload: %w", err)
	}

	png, err := qr.Encode(string(payload), qr.Medium, g.size)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
