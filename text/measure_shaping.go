package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/ggedit"
)

// ShapingMeasurer measures text after HarfBuzz shaping via
// github.com/go-text/typesetting, so kerning and ligatures affect widths the
// same way they affect rendering.
//
// Parsed fonts are cached per family (font.Font is read-only and safe to
// share). A lightweight font.Face is created per call. ShapingMeasurer is
// safe for concurrent use.
type ShapingMeasurer struct {
	shaperPool sync.Pool

	mu     sync.RWMutex
	fonts  fontRegistry
	parsed map[string]*font.Font
	warned map[string]bool

	lang   language.Language
	logger *slog.Logger
}

// NewShapingMeasurer creates a ShapingMeasurer with the builtin Go fonts.
func NewShapingMeasurer(opts ...MeasurerOption) *ShapingMeasurer {
	cfg := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = ggedit.Logger()
	}
	return &ShapingMeasurer{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts:  newFontRegistry(cfg.fallback),
		parsed: make(map[string]*font.Font),
		warned: make(map[string]bool),
		lang:   language.NewLanguage(cfg.language),
		logger: cfg.logger,
	}
}

// RegisterFamily makes a TTF/OTF font available under name.
func (m *ShapingMeasurer) RegisterFamily(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("text: failed to parse font %q: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key, err := m.fonts.register(name, data)
	if err != nil {
		return err
	}
	m.parsed[key] = face.Font
	return nil
}

// Measure implements Measurer.
func (m *ShapingMeasurer) Measure(s string, style Style) float64 {
	if s == "" {
		return 0
	}
	style = style.Normalize()
	f := m.font(style.Family)
	if f == nil {
		return 0
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(style.Size),
		Script:    detectScript(runes),
		Language:  m.lang,
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	adv := fixedToFloat64(out.Advance)
	if adv < 0 {
		adv = -adv
	}
	return adv
}

// font returns the parsed font for a family, parsing builtin data lazily.
func (m *ShapingMeasurer) font(family string) *font.Font {
	m.mu.RLock()
	key, data, found := m.fonts.lookup(family)
	f, ok := m.parsed[key]
	warned := m.warned[family]
	m.mu.RUnlock()

	if !found && !warned {
		m.mu.Lock()
		m.warned[family] = true
		m.mu.Unlock()
		m.logger.Warn("text: unknown font family, using fallback", "family", family, "fallback", key)
	}
	if ok {
		return f
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.parsed[key]; ok {
		return f
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		m.logger.Warn("text: font parse failed", "family", key, "error", err)
		return nil
	}
	m.parsed[key] = face.Font
	return face.Font
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
