package tryon

// ImageAsset is a transport-ready image payload plus its MIME type.
type ImageAsset struct {
	Data     []byte
	MIMEType string
}

// Size returns the payload size in bytes.
func (a *ImageAsset) Size() int { return len(a.Data) }

// MIME types accepted from the storefront's file picker.
var allowedUserTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// AcquireUserImage validates an uploaded photo and wraps it as an asset.
// The bytes are kept verbatim and the MIME type is recorded unchanged; no
// resizing or recompression happens here.
func AcquireUserImage(data []byte, mimeType string) (*ImageAsset, error) {
	if !allowedUserTypes[mimeType] {
		return nil, &ValidationError{Reason: "unsupported file type"}
	}
	return &ImageAsset{Data: data, MIMEType: mimeType}, nil
}
