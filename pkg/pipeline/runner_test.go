package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/weightstack/pkg/core/layout"
	"github.com/matzehuels/weightstack/pkg/errors"
	"github.com/matzehuels/weightstack/pkg/observability"
	"github.com/matzehuels/weightstack/pkg/scene"
)

func ptr(v float64) *float64 { return &v }

// twoUp is a row with a fixed 30x20 leaf (weight 1) and a filling leaf
// (weight 3).
func twoUp(p *scene.Proposal) *scene.Scene {
	return &scene.Scene{
		Name:     "two-up",
		Proposal: p,
		Root: scene.Node{
			Orientation: scene.OrientationRow,
			Children: []scene.Node{
				{ID: "a", Weight: 1, Width: 30, Height: 20},
				{ID: "b", Weight: 3, Width: 60, Height: 10, Sizing: scene.SizingFill},
			},
		},
	}
}

func TestArrange(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Arrange(context.Background(), twoUp(&scene.Proposal{Width: ptr(200), Height: ptr(100)}), Options{})
	if err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}

	want := scene.Layout{
		Name:   "two-up",
		Width:  200,
		Height: 100,
		Frames: []scene.Frame{
			{ID: "root", Container: true, Width: 200, Height: 100},
			{ID: "a", Path: "0", Depth: 1, Weight: 1, X: 0, Y: 40, Width: 30, Height: 20},
			{ID: "b", Path: "1", Depth: 1, Weight: 3, X: 56, Y: 0, Width: 144, Height: 100},
		},
	}
	if diff := cmp.Diff(want, res.Layout); diff != "" {
		t.Errorf("Arrange() layout mismatch (-want +got):\n%s", diff)
	}

	wantStats := Stats{Nodes: 3, Leaves: 2, Containers: 1}
	if diff := cmp.Diff(wantStats, res.Stats, cmpopts.IgnoreFields(Stats{}, "Duration")); diff != "" {
		t.Errorf("Arrange() stats mismatch (-want +got):\n%s", diff)
	}
	if res.ID.String() == "" {
		t.Error("Arrange() result has no ID")
	}
}

func TestArrangeRowSpacingOverride(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Arrange(context.Background(), twoUp(&scene.Proposal{Width: ptr(200)}), Options{RowSpacing: ptr(0)})
	if err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}

	b, _ := res.Layout.Frame("b")
	if b.X != 50 || b.Width != 150 {
		t.Errorf("b = x:%v width:%v, want x:50 width:150", b.X, b.Width)
	}
}

func TestArrangeNested(t *testing.T) {
	s := &scene.Scene{
		Proposal: &scene.Proposal{Width: ptr(300), Height: ptr(200)},
		Root: scene.Node{
			ID:          "page",
			Orientation: scene.OrientationRow,
			Alignment:   "top",
			Spacing:     ptr(0),
			Children: []scene.Node{
				{ID: "side", Weight: 1, Width: 10, Height: 10, Sizing: scene.SizingFill},
				{
					ID:          "main",
					Weight:      2,
					Orientation: scene.OrientationColumn,
					Spacing:     ptr(0),
					Children: []scene.Node{
						{Weight: 1, Sizing: scene.SizingFill},
						{Weight: 1, Sizing: scene.SizingFill},
					},
				},
			},
		},
	}

	res, err := NewRunner(nil).Arrange(context.Background(), s, Options{})
	if err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}

	var ids []string
	for _, f := range res.Layout.Frames {
		ids = append(ids, f.ID)
	}
	wantIDs := []string{"page", "side", "main", "root/1/0", "root/1/1"}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Fatalf("frame order mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		id         string
		x, y, w, h float64
	}{
		{"side", 0, 0, 100, 200},
		{"main", 100, 0, 200, 200},
		{"root/1/0", 100, 0, 200, 100},
		{"root/1/1", 100, 100, 200, 100},
	}
	for _, tt := range tests {
		f, ok := res.Layout.Frame(tt.id)
		if !ok {
			t.Errorf("Frame(%q) not found", tt.id)
			continue
		}
		got := [4]float64{f.X, f.Y, f.Width, f.Height}
		want := [4]float64{tt.x, tt.y, tt.w, tt.h}
		if got != want {
			t.Errorf("Frame(%q) = %v, want %v", tt.id, got, want)
		}
	}

	if f, _ := res.Layout.Frame("root/1/1"); f.Depth != 2 || f.Path != "1/1" {
		t.Errorf("root/1/1 depth, path = %d, %q, want 2, %q", f.Depth, f.Path, "1/1")
	}
	if s.Root.Children[1].Children[0].ID != "" {
		t.Error("Arrange() modified the input scene")
	}
}

func TestArrangeZeroWeights(t *testing.T) {
	s := twoUp(&scene.Proposal{Width: ptr(200)})
	s.Root.Children[0].Weight = 0
	s.Root.Children[1].Weight = 0

	res, err := NewRunner(nil).Arrange(context.Background(), s, Options{})
	if err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}
	a, _ := res.Layout.Frame("a")
	b, _ := res.Layout.Frame("b")
	if a.X != 0 || b.X != 8 || b.Width != 0 {
		t.Errorf("a.X, b.X, b.Width = %v, %v, %v, want 0, 8, 0", a.X, b.X, b.Width)
	}
}

func TestArrangeLeafRoot(t *testing.T) {
	s := &scene.Scene{Root: scene.Node{ID: "only", Width: 30, Height: 20}}
	res, err := NewRunner(nil).Arrange(context.Background(), s, Options{})
	if err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}
	want := []scene.Frame{{ID: "only", Width: 30, Height: 20}}
	if diff := cmp.Diff(want, res.Layout.Frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestArrangeRejectsIDClash(t *testing.T) {
	s := &scene.Scene{Root: scene.Node{
		Orientation: scene.OrientationRow,
		Children:    []scene.Node{{ID: scene.RootID, Weight: 1, Width: 10, Height: 10}},
	}}
	_, err := NewRunner(nil).Arrange(context.Background(), s, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("Arrange() error = %v, want %s", err, errors.ErrCodeInvalidScene)
	}
}

func TestArrangeUnknownAlignment(t *testing.T) {
	s := twoUp(&scene.Proposal{Width: ptr(200), Height: ptr(100)})
	s.Root.Alignment = "baseline"

	res, err := NewRunner(nil).Arrange(context.Background(), s, Options{})
	if err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "root") {
		t.Errorf("Warnings = %v, want one warning for root", res.Warnings)
	}
	if a, _ := res.Layout.Frame("a"); a.Y != 0 {
		t.Errorf("a.Y = %v, want 0 (leading)", a.Y)
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name     string
		proposal *scene.Proposal
		opts     Options
		want     layout.Size
	}{
		{
			name: "unconstrained extrapolates from natural sizes",
			want: layout.Size{Width: 128, Height: 20},
		},
		{
			name:     "constrained width is filled",
			proposal: &scene.Proposal{Width: ptr(500)},
			want:     layout.Size{Width: 500, Height: 20},
		},
		{
			name: "width override",
			opts: Options{Width: ptr(200)},
			want: layout.Size{Width: 200, Height: 20},
		},
		{
			name:     "free width wins over scene proposal",
			proposal: &scene.Proposal{Width: ptr(500), Height: ptr(40)},
			opts:     Options{FreeWidth: true},
			want:     layout.Size{Width: 128, Height: 40},
		},
	}

	r := NewRunner(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := twoUp(tt.proposal)
			s.Root.Children[1].Sizing = scene.SizingFixed
			got, err := r.Measure(context.Background(), s, tt.opts)
			if err != nil {
				t.Fatalf("Measure() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Measure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunnerErrors(t *testing.T) {
	r := NewRunner(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Arrange(ctx, twoUp(nil), Options{}); err != context.Canceled {
		t.Errorf("Arrange(canceled) error = %v, want %v", err, context.Canceled)
	}

	bad := twoUp(nil)
	bad.Root.Children[0].Weight = -1
	if _, err := r.Arrange(context.Background(), bad, Options{}); !errors.Is(err, errors.ErrCodeInvalidWeight) {
		t.Errorf("Arrange(negative weight) error = %v, want %s", err, errors.ErrCodeInvalidWeight)
	}

	if _, err := r.Measure(context.Background(), twoUp(nil), Options{Format: "xml"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Measure(xml) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

type recordingHooks struct {
	observability.NoopLayoutHooks

	mu       sync.Mutex
	started  int
	placed   []string
	complete int
}

func (h *recordingHooks) OnArrangeStart(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
}

func (h *recordingHooks) OnPlace(_ context.Context, id string, _, _, _, _ float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.placed = append(h.placed, id)
}

func (h *recordingHooks) OnArrangeComplete(_ context.Context, _ string, frames int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.complete = frames
}

func TestArrangeHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetLayoutHooks(h)
	defer observability.Reset()

	if _, err := NewRunner(nil).Arrange(context.Background(), twoUp(nil), Options{}); err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}

	if h.started != 1 {
		t.Errorf("OnArrangeStart calls = %d, want 1", h.started)
	}
	if diff := cmp.Diff([]string{"root", "a", "b"}, h.placed); diff != "" {
		t.Errorf("OnPlace order mismatch (-want +got):\n%s", diff)
	}
	if h.complete != 3 {
		t.Errorf("OnArrangeComplete frames = %d, want 3", h.complete)
	}
}

func TestResultMarshal(t *testing.T) {
	res, err := NewRunner(nil).Arrange(context.Background(), twoUp(nil), Options{})
	if err != nil {
		t.Fatalf("Arrange() error: %v", err)
	}
	data, err := res.Marshal(scene.FormatYAML)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "id: b") {
		t.Errorf("Marshal() output missing frame b:\n%s", data)
	}
}
