package null

import (
	"testing"

	"github.com/gogpu/plot/recording"
)

func TestBackendCounts(t *testing.T) {
	rec := recording.NewRecorder(recording.Info{Width: 10, Height: 10})
	rec.BeginPage()
	_ = rec.Polyline([]recording.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	_ = rec.Fill(recording.Path{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}})
	rec.BeginPage()

	b, err := recording.NewBackend("null")
	if err != nil {
		t.Fatalf("NewBackend(null): %v", err)
	}
	r := rec.Finish()
	for i := 0; i < 2; i++ {
		if err := r.Playback(b); err != nil {
			t.Fatalf("Playback: %v", err)
		}
	}

	pages, polylines, fills := b.(*Backend).Stats()
	if pages != 2 || polylines != 1 || fills != 1 {
		t.Errorf("Stats() = %d, %d, %d; want 2, 1, 1 (counts reset by Begin)", pages, polylines, fills)
	}
}
