package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality is used when a downscaled image is re-encoded as JPEG.
const DefaultJPEGQuality = 85

// Encoder converts payloads to data URIs, downscaling oversized images.
type Encoder struct {
	MaxDimension int   // longest side in px; 0 disables downscaling
	JPEGQuality  int   // 1..100 (default: 85)
	MaxBytes     int64 // payload limit (default: 20 MiB)
}

// Encode returns p as a base64 data URI.
func (e *Encoder) Encode(p *Payload) (string, error) {
	if p == nil || len(p.Data) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrUnsupportedMedia)
	}
	maxBytes := e.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if int64(len(p.Data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(p.Data))
	}

	mimeType := sniffMIME(p)
	if !strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "video/") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMedia, mimeType)
	}

	data := p.Data
	if mimeType != "image/svg+xml" && strings.HasPrefix(mimeType, "image/") {
		var err error
		data, mimeType, err = e.recompress(data, mimeType)
		if err != nil {
			return "", err
		}
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// recompress downscales images whose longest side exceeds MaxDimension and
// converts TIFF, which browsers do not display, to PNG. Other images pass
// through untouched. GIF is never resized so animation frames survive.
func (e *Encoder) recompress(data []byte, mimeType string) ([]byte, string, error) {
	if mimeType == "image/gif" {
		return data, mimeType, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		// Formats without a registered decoder (avif, heic) go out as-is.
		return data, mimeType, nil
	}

	oversized := e.MaxDimension > 0 && (cfg.Width > e.MaxDimension || cfg.Height > e.MaxDimension)
	if !oversized && mimeType != "image/tiff" {
		return data, mimeType, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: decode: %v", ErrUnsupportedMedia, err)
	}
	if oversized {
		img = imaging.Fit(img, e.MaxDimension, e.MaxDimension, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	switch mimeType {
	case "image/png", "image/tiff", "image/bmp":
		err = imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
		mimeType = "image/png"
	default:
		quality := e.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
		mimeType = "image/jpeg"
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: encode: %v", ErrUnsupportedMedia, err)
	}
	return buf.Bytes(), mimeType, nil
}

// sniffMIME detects the media type from content, then the reported header.
// SVG is text and has no magic number, so it is matched textually.
func sniffMIME(p *Payload) string {
	if isSVG(p.Data) {
		return "image/svg+xml"
	}
	if kind, err := filetype.Match(p.Data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return headerMIME(p.ContentType)
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	s := strings.ToLower(strings.TrimSpace(string(head)))
	return strings.HasPrefix(s, "<svg") ||
		(strings.HasPrefix(s, "<?xml") && strings.Contains(s, "<svg"))
}
