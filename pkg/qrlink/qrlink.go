// Package qrlink renders message QR deep links locally, so the CLI can
// show or save a scannable code without fetching the platform's
// pre-rendered image.
package qrlink

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mdp/qrterminal/v3"
	qrcode "github.com/skip2/go-qrcode"
	"rsc.io/qr"
)

// DefaultSize is the pixel edge used when no size is given.
const DefaultSize = 256

// DeepLink builds the wa.me link a QR resource encodes: opening it starts
// a chat with the given phone number, prefilled with text.
func DeepLink(phone, text string) string {
	link := "https://wa.me/" + strings.TrimPrefix(phone, "+")
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

// RenderPNG encodes data as a square PNG of the given edge size.
func RenderPNG(data string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr png: %w", err)
	}
	return png, nil
}

// RenderSVG encodes data as a self-contained SVG string with black
// modules on a white background, suitable for direct embedding.
func RenderSVG(data string, size int) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}
	code, err := qr.Encode(data, qr.M)
	if err != nil {
		return "", fmt.Errorf("encoding qr svg: %w", err)
	}

	n := code.Size
	if n == 0 {
		return "", fmt.Errorf("empty qr code")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		n, n, size, size,
	))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#fff"/>`, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if code.Black(x, y) {
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="1" height="1" fill="#000"/>`, x, y))
			}
		}
	}
	sb.WriteString(`</svg>`)
	return sb.String(), nil
}

// RenderTerminal writes a half-block QR code to w for scanning straight
// off the terminal.
func RenderTerminal(data string, w io.Writer) {
	qrterminal.GenerateHalfBlock(data, qrterminal.L, w)
}
