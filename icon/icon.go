// Package icon holds the bitmaps drawn by marker commands.
//
// A Set maps icon identifiers, as used in radar.MarkerConfig, to images.
// Hosts register their own assets, typically base64-encoded PNG data, and
// Builtin provides drawn stand-ins for the default marker identifiers.
package icon

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownIcon is returned when an identifier is not in the set.
var ErrUnknownIcon = errors.New("icon: unknown icon")

// dataURIPrefix is accepted in front of base64 PNG payloads.
const dataURIPrefix = "data:image/png;base64,"

// Set is a registry of icon images. Set is safe for concurrent use.
type Set struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{images: make(map[string]image.Image)}
}

// Add registers img under id, replacing any previous image.
func (s *Set) Add(id string, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[id] = img
}

// AddPNG decodes PNG data and registers it under id.
func (s *Set) AddPNG(id string, data []byte) error {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("icon: decode %q: %w", id, err)
	}
	s.Add(id, img)
	return nil
}

// AddBase64PNG registers a base64-encoded PNG. A leading
// "data:image/png;base64," prefix is accepted.
func (s *Set) AddBase64PNG(id, encoded string) error {
	encoded = strings.TrimPrefix(strings.TrimSpace(encoded), dataURIPrefix)
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("icon: base64 %q: %w", id, err)
	}
	return s.AddPNG(id, data)
}

// LoadFile reads a PNG file and registers it under id.
func (s *Set) LoadFile(id, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	return s.AddPNG(id, data)
}

// Get returns the image registered under id.
func (s *Set) Get(id string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	return img, ok
}

// IDs returns the sorted identifiers in the set.
func (s *Set) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.images))
	for id := range s.images {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DataURI returns the icon encoded as a PNG data URI, suitable for an SVG
// image href.
func (s *Set) DataURI(id string) (string, error) {
	img, ok := s.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIcon, id)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("icon: encode %q: %w", id, err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
