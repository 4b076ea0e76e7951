// Package serializers maps models to and from their JSON wire representation.
package serializers

import (
	"strings"

	"catalog/internal/models"
	"catalog/internal/storage"
)

// Serializer renders models as wire objects. MediaURL prefixes media paths.
type Serializer struct {
	MediaURL string
}

// New creates a Serializer that publishes media under mediaURL.
func New(mediaURL string) *Serializer {
	return &Serializer{MediaURL: mediaURL}
}

// URL turns a stored media reference into a URL. External URLs and absolute
// paths are returned unchanged.
func (s *Serializer) URL(ref string) string {
	if !storage.IsLocal(ref) {
		return ref
	}
	return s.MediaURL + "/" + ref
}

// Ref is the inverse of URL: a URL below MediaURL becomes the stored media
// path again. Anything else is returned unchanged.
func (s *Serializer) Ref(u string) string {
	if s.MediaURL == "" {
		return u
	}
	if rel, ok := strings.CutPrefix(u, s.MediaURL+"/"); ok {
		return rel
	}
	return u
}

func (s *Serializer) optionalURL(ref string) *string {
	if ref == "" {
		return nil
	}
	u := s.URL(ref)
	return &u
}

// Summary is the {id, name} pair embedded for related records.
type Summary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func properties(p []models.Property) []models.Property {
	if p == nil {
		return []models.Property{}
	}
	return p
}
