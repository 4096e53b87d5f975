package messages

import "fmt"

// maxCaptionLength is the Cloud API limit for media captions, in runes.
const maxCaptionLength = 1024

// media is the shared shape of all media variants. Exactly one of ID
// (a previously uploaded media id) or Link (a public HTTPS URL) must be
// set; the API rejects payloads carrying both.
type media struct {
	ID   string `json:"id,omitempty"`
	Link string `json:"link,omitempty"`
}

func newMedia(kind, id, link string) (media, error) {
	switch {
	case id == "" && link == "":
		return media{}, fmt.Errorf("%w: %s requires a media id or a link", ErrInvalidMessage, kind)
	case id != "" && link != "":
		return media{}, fmt.Errorf("%w: %s accepts a media id or a link, not both", ErrInvalidMessage, kind)
	}
	return media{ID: id, Link: link}, nil
}

func validCaption(kind, caption string) error {
	if n := len([]rune(caption)); n > maxCaptionLength {
		return fmt.Errorf("%w: %s caption is %d characters, limit is %d", ErrInvalidMessage, kind, n, maxCaptionLength)
	}
	return nil
}

// Audio is an audio message. Audio carries no caption on the Cloud API.
type Audio struct {
	media
}

// NewAudio builds an audio message from a media id or link.
func NewAudio(id, link string) (*Audio, error) {
	m, err := newMedia(TypeAudio, id, link)
	if err != nil {
		return nil, err
	}
	return &Audio{media: m}, nil
}

func (*Audio) MessageType() string { return TypeAudio }

// Document is a document message with an optional caption and filename.
type Document struct {
	media
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// NewDocument builds a document message from a media id or link.
func NewDocument(id, link, caption, filename string) (*Document, error) {
	m, err := newMedia(TypeDocument, id, link)
	if err != nil {
		return nil, err
	}
	if err := validCaption(TypeDocument, caption); err != nil {
		return nil, err
	}
	return &Document{media: m, Caption: caption, Filename: filename}, nil
}

func (*Document) MessageType() string { return TypeDocument }

// Image is an image message with an optional caption.
type Image struct {
	media
	Caption string `json:"caption,omitempty"`
}

// NewImage builds an image message from a media id or link.
func NewImage(id, link, caption string) (*Image, error) {
	m, err := newMedia(TypeImage, id, link)
	if err != nil {
		return nil, err
	}
	if err := validCaption(TypeImage, caption); err != nil {
		return nil, err
	}
	return &Image{media: m, Caption: caption}, nil
}

func (*Image) MessageType() string { return TypeImage }

// Sticker is a sticker message. Stickers carry no caption.
type Sticker struct {
	media
}

// NewSticker builds a sticker message from a media id or link.
func NewSticker(id, link string) (*Sticker, error) {
	m, err := newMedia(TypeSticker, id, link)
	if err != nil {
		return nil, err
	}
	return &Sticker{media: m}, nil
}

func (*Sticker) MessageType() string { return TypeSticker }

// Video is a video message with an optional caption.
type Video struct {
	media
	Caption string `json:"caption,omitempty"`
}

// NewVideo builds a video message from a media id or link.
func NewVideo(id, link, caption string) (*Video, error) {
	m, err := newMedia(TypeVideo, id, link)
	if err != nil {
		return nil, err
	}
	if err := validCaption(TypeVideo, caption); err != nil {
		return nil, err
	}
	return &Video{media: m, Caption: caption}, nil
}

func (*Video) MessageType() string { return TypeVideo }
