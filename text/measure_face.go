package text

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/ggedit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FaceMeasurer measures text with golang.org/x/image/font/opentype.
//
// Parsed fonts and sized faces are kept per family and size; they are
// keyed by style so a font change never reuses a face of another style.
// FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	mu     sync.Mutex
	fonts  fontRegistry
	parsed map[string]*opentype.Font
	faces  map[string]font.Face
	warned map[string]bool
	logger *slog.Logger
}

// NewFaceMeasurer creates a FaceMeasurer with the builtin Go fonts.
func NewFaceMeasurer(opts ...MeasurerOption) *FaceMeasurer {
	cfg := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = ggedit.Logger()
	}
	return &FaceMeasurer{
		fonts:  newFontRegistry(cfg.fallback),
		parsed: make(map[string]*opentype.Font),
		faces:  make(map[string]font.Face),
		warned: make(map[string]bool),
		logger: cfg.logger,
	}
}

// RegisterFamily makes a TTF/OTF font available under name. The data is
// validated immediately.
func (m *FaceMeasurer) RegisterFamily(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: failed to parse font %q: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.fonts.register(name, data)
	if err != nil {
		return err
	}
	m.parsed[key] = f
	m.dropFaces(key)
	return nil
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(s string, style Style) float64 {
	if s == "" {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.face(style.Normalize())
	if face == nil {
		return 0
	}
	return fixedToFloat64(font.MeasureString(face, s))
}

// Metrics returns the ascent and descent of a style in canvas pixels.
func (m *FaceMeasurer) Metrics(style Style) (ascent, descent float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.face(style.Normalize())
	if face == nil {
		return 0, 0
	}
	met := face.Metrics()
	return fixedToFloat64(met.Ascent), fixedToFloat64(met.Descent)
}

// Close releases every sized face. The measurer stays usable; faces are
// recreated on demand.
func (m *FaceMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.faces {
		m.dropFace(k)
	}
	return nil
}

// face returns the sized face for style. Callers hold m.mu.
func (m *FaceMeasurer) face(style Style) font.Face {
	key, data, found := m.fonts.lookup(style.Family)
	if !found && !m.warned[style.Family] {
		m.warned[style.Family] = true
		m.logger.Warn("text: unknown font family, using fallback",
			"family", style.Family, "fallback", key)
	}

	faceKey := Style{Family: key, Size: style.Size}.Key()
	if f, ok := m.faces[faceKey]; ok {
		return f
	}

	parsed, ok := m.parsed[key]
	if !ok {
		var err error
		parsed, err = opentype.Parse(data)
		if err != nil {
			m.logger.Warn("text: font parse failed", "family", key, "error", err)
			return nil
		}
		m.parsed[key] = parsed
	}

	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    style.Size,
		DPI:     72, // 1pt == 1 canvas pixel
		Hinting: font.HintingNone,
	})
	if err != nil {
		m.logger.Warn("text: face creation failed", "family", key, "size", style.Size, "error", err)
		return nil
	}
	m.faces[faceKey] = f
	return f
}

// dropFaces closes every face of a family. Callers hold m.mu.
func (m *FaceMeasurer) dropFaces(family string) {
	prefix := family + "/"
	for k := range m.faces {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			m.dropFace(k)
		}
	}
}

func (m *FaceMeasurer) dropFace(k string) {
	if f, ok := m.faces[k]; ok {
		_ = f.Close()
		delete(m.faces, k)
	}
}
