package domain

import "time"

// CreativeAsset is an uploaded image, video or copy file attached to an ad
// campaign request.
type CreativeAsset struct {
	Type       string    `json:"type" validate:"required,oneof=image video text"`
	URL        string    `json:"url" validate:"required,url"`
	Name       string    `json:"name,omitempty"`
	Size       int64     `json:"size,omitempty"`
	MimeType   string    `json:"mime_type,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// WithoutAsset returns assets minus every entry with the given URL.
func WithoutAsset(assets []CreativeAsset, url string) []CreativeAsset {
	out := make([]CreativeAsset, 0, len(assets))
	for _, a := range assets {
		if a.URL != url {
			out = append(out, a)
		}
	}
	return out
}
