package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ImageFormat selects the rendering of a QR resource's image.
type ImageFormat string

// The only formats the API renders.
const (
	FormatPNG ImageFormat = "png"
	FormatSVG ImageFormat = "svg"
)

// ParseImageFormat validates a user-supplied format string.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch ImageFormat(s) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: image format must be %q or %q, got %q", ErrInvalidArgument, FormatPNG, FormatSVG, s)
}

// CreateQR creates a message QR resource carrying the prefilled message,
// rendered in the given format. An out-of-enumeration format fails
// locally without a server round-trip.
func (c *Client) CreateQR(ctx context.Context, botID, prefilled string, format ImageFormat) (*QRResponse, error) {
	if botID == "" {
		return nil, requiredArg("bot id")
	}
	if prefilled == "" {
		return nil, requiredArg("prefilled message")
	}
	if _, err := ParseImageFormat(string(format)); err != nil {
		return nil, err
	}

	query := url.Values{
		"generate_qr_image": {string(format)},
		"prefilled_message": {prefilled},
	}
	data, err := c.request(ctx, http.MethodPost, botID+"/message_qrdls", query, nil)
	if err != nil {
		return nil, err
	}
	return c.qrResponse(data)
}

// RetrieveQR fetches one QR resource by id, or all of them when id is
// empty.
func (c *Client) RetrieveQR(ctx context.Context, botID, id string) (*QRListResponse, error) {
	if botID == "" {
		return nil, requiredArg("bot id")
	}

	path := botID + "/message_qrdls"
	if id != "" {
		path += "/" + id
	}
	data, err := c.request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	res := &QRListResponse{Raw: data}
	if c.parsed {
		if err := json.Unmarshal(data, res); err != nil {
			return nil, fmt.Errorf("decoding qr list response: %w", err)
		}
	}
	return res, nil
}

// UpdateQR replaces the prefilled message of an existing QR resource.
func (c *Client) UpdateQR(ctx context.Context, botID, id, prefilled string) (*QRResponse, error) {
	if botID == "" {
		return nil, requiredArg("bot id")
	}
	if id == "" {
		return nil, requiredArg("qr id")
	}
	if prefilled == "" {
		return nil, requiredArg("prefilled message")
	}

	query := url.Values{"prefilled_message": {prefilled}}
	data, err := c.request(ctx, http.MethodPost, botID+"/message_qrdls/"+id, query, nil)
	if err != nil {
		return nil, err
	}
	return c.qrResponse(data)
}

// DeleteQR removes a QR resource.
func (c *Client) DeleteQR(ctx context.Context, botID, id string) (*StatusResponse, error) {
	if botID == "" {
		return nil, requiredArg("bot id")
	}
	if id == "" {
		return nil, requiredArg("qr id")
	}

	data, err := c.request(ctx, http.MethodDelete, botID+"/message_qrdls/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	res := &StatusResponse{Raw: data}
	if c.parsed {
		if err := json.Unmarshal(data, res); err != nil {
			return nil, fmt.Errorf("decoding qr delete response: %w", err)
		}
	}
	return res, nil
}

func (c *Client) qrResponse(data []byte) (*QRResponse, error) {
	res := &QRResponse{Raw: data}
	if c.parsed {
		if err := json.Unmarshal(data, res); err != nil {
			return nil, fmt.Errorf("decoding qr response: %w", err)
		}
	}
	return res, nil
}
