package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/subsurface-colortables/server/internal/cache"
	"github.com/subsurface-colortables/server/internal/render"
	"github.com/subsurface-colortables/server/pkg/colortable"
)

func newTestService(t *testing.T, defaultTable string) *ColorTableService {
	t.Helper()

	cacheManager, err := cache.NewManager(cache.Config{
		PreviewCacheSizeMB: 1,
		PreviewTTL:         time.Minute,
		PayloadCacheSize:   16,
	})
	if err != nil {
		t.Fatalf("Failed to initialize cache: %v", err)
	}
	t.Cleanup(func() { cacheManager.Close() })

	return NewColorTableService(ColorTableServiceConfig{
		Cache:        cacheManager,
		Renderer:     render.NewPreviewRenderer(render.Config{Width: 64, Height: 8}),
		DefaultTable: defaultTable,
	})
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{"": FilterAll, "true": FilterDiscrete, "1": FilterDiscrete, "false": FilterContinuous, "0": FilterContinuous}
	for in, want := range cases {
		got, err := ParseFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseFilter(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFilter("maybe"); err == nil {
		t.Fatal("expected error for invalid filter")
	}
}

func TestList(t *testing.T) {
	svc := newTestService(t, "")

	if got := len(svc.List(FilterAll)); got != 12 {
		t.Fatalf("expected 12 tables, got %d", got)
	}
	for _, tbl := range svc.List(FilterDiscrete) {
		if !tbl.Discrete {
			t.Fatalf("continuous table %s in discrete listing", tbl.Name)
		}
	}
	for _, tbl := range svc.List(FilterContinuous) {
		if tbl.Discrete {
			t.Fatalf("discrete table %s in continuous listing", tbl.Name)
		}
	}
}

func TestDefaultTable(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		tbl, err := newTestService(t, "Facies").DefaultTable()
		if err != nil || tbl.Name != "Facies" {
			t.Fatalf("expected Facies, got %q (%v)", tbl.Name, err)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		tbl, err := newTestService(t, "Nonexistent").DefaultTable()
		if err != nil || tbl.Name != "Physics" {
			t.Fatalf("expected Physics fallback, got %q (%v)", tbl.Name, err)
		}
	})
}

func TestEncodedIsCached(t *testing.T) {
	svc := newTestService(t, "")

	first, err := svc.Encoded("Seismic", colortable.FormatJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(first), `"name":"Seismic"`) {
		t.Fatalf("unexpected payload %s", first)
	}
	if _, ok := svc.cache.GetPayload(cache.PayloadKey("Seismic", "json")); !ok {
		t.Fatal("expected payload to be cached")
	}
	second, err := svc.Encoded("Seismic", colortable.FormatJSON)
	if err != nil || !bytes.Equal(first, second) {
		t.Fatalf("cached payload differs: %v", err)
	}
}

func TestEncodedCatalogueRoundTrip(t *testing.T) {
	svc := newTestService(t, "")

	data, err := svc.Encoded("", colortable.FormatYAML)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cat, err := colortable.Decode(bytes.NewReader(data), colortable.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cat.Len() != colortable.Default().Len() {
		t.Fatalf("expected %d tables, got %d", colortable.Default().Len(), cat.Len())
	}
}

func TestNotFound(t *testing.T) {
	svc := newTestService(t, "")

	if _, err := svc.Get("Nonexistent"); !errors.Is(err, colortable.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Encoded("Nonexistent", colortable.FormatJSON); !errors.Is(err, colortable.ErrNotFound) {
		t.Errorf("Encoded: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Preview("Nonexistent"); !errors.Is(err, colortable.ErrNotFound) {
		t.Errorf("Preview: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Legend("Nonexistent"); !errors.Is(err, colortable.ErrNotFound) {
		t.Errorf("Legend: expected ErrNotFound, got %v", err)
	}
}

func TestPreviewIsCached(t *testing.T) {
	svc := newTestService(t, "")

	data, err := svc.Preview("Time/Depth")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("expected PNG data")
	}
	cached, ok := svc.cache.GetPreview(cache.PreviewKey("Time/Depth", 64, 8))
	if !ok || !bytes.Equal(cached, data) {
		t.Fatal("expected preview to be cached")
	}
}

func TestLegend(t *testing.T) {
	svc := newTestService(t, "")

	t.Run("discrete", func(t *testing.T) {
		legend, err := svc.Legend("GasWater")
		if err != nil {
			t.Fatalf("legend: %v", err)
		}
		want := []string{"#ff2e00", "#0019ff", "#b3b3b3"}
		if len(legend.Items) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(legend.Items))
		}
		for i, item := range legend.Items {
			if item.Index == nil || *item.Index != i || item.Position != nil {
				t.Errorf("item %d: unexpected index/position %+v", i, item)
			}
			if item.Color != want[i] {
				t.Errorf("item %d: color %s, want %s", i, item.Color, want[i])
			}
		}
	})

	t.Run("continuous", func(t *testing.T) {
		legend, err := svc.Legend("Seismic")
		if err != nil {
			t.Fatalf("legend: %v", err)
		}
		if len(legend.Items) != 3 || legend.Items[1].Position == nil || *legend.Items[1].Position != 0.5 {
			t.Fatalf("unexpected legend: %+v", legend)
		}
		if legend.Items[1].Color != "#ffffff" {
			t.Fatalf("unexpected mid color %s", legend.Items[1].Color)
		}
	})
}
