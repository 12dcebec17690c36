// Package render provides color table preview rendering using fogleman/gg.
package render

import (
	"bytes"
	"image/color"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"github.com/subsurface-colortables/server/pkg/colortable"
)

// Config contains renderer configuration.
type Config struct {
	Width  int
	Height int
}

// PreviewRenderer renders color tables as horizontal PNG swatches.
type PreviewRenderer struct {
	config      Config
	contextPool sync.Pool
	bufferPool  sync.Pool
}

// NewPreviewRenderer creates a new preview renderer.
func NewPreviewRenderer(cfg Config) *PreviewRenderer {
	return &PreviewRenderer{
		config: cfg,
		contextPool: sync.Pool{
			New: func() interface{} {
				return gg.NewContext(cfg.Width, cfg.Height)
			},
		},
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 4*1024))
			},
		},
	}
}

// Size returns the swatch dimensions.
func (r *PreviewRenderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// RenderPreview draws the table as a swatch. Continuous tables become a
// linear gradient through their control points; discrete tables get one
// equal-width slot per index, with unused indices left transparent.
func (r *PreviewRenderer) RenderPreview(t colortable.ColorTable) ([]byte, error) {
	dc := r.contextPool.Get().(*gg.Context)
	defer r.contextPool.Put(dc)

	dc.SetColor(color.Transparent)
	dc.Clear()

	if len(t.Colors) == 0 {
		return r.encodeContext(dc)
	}

	if t.Discrete {
		r.drawDiscrete(dc, t.Colors)
	} else {
		r.drawContinuous(dc, t.Colors)
	}

	return r.encodeContext(dc)
}

func (r *PreviewRenderer) drawContinuous(dc *gg.Context, points []colortable.ControlPoint) {
	w, h := float64(r.config.Width), float64(r.config.Height)

	grad := gg.NewLinearGradient(0, 0, w, 0)
	for _, p := range points {
		grad.AddColorStop(p.Pos, p.RGBA())
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

func (r *PreviewRenderer) drawDiscrete(dc *gg.Context, points []colortable.ControlPoint) {
	w, h := float64(r.config.Width), float64(r.config.Height)

	maxIdx := 0
	for _, p := range points {
		if p.Index() > maxIdx {
			maxIdx = p.Index()
		}
	}
	slot := w / float64(maxIdx+1)

	for _, p := range points {
		if p.Index() < 0 {
			continue
		}
		dc.SetColor(p.RGBA())
		dc.DrawRectangle(float64(p.Index())*slot, 0, slot, h)
		dc.Fill()
	}
}

func (r *PreviewRenderer) encodeContext(dc *gg.Context) ([]byte, error) {
	buf := r.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		r.bufferPool.Put(buf)
	}()

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(buf, dc.Image()); err != nil {
		return nil, err
	}

	// Copy buffer contents (buffer will be reused)
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
