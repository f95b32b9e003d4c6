package scene

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/weightstack/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scene)
		want   errors.Code
	}{
		{name: "valid", mutate: func(*Scene) {}},
		{name: "zero weights are valid", mutate: func(s *Scene) { s.Root.Children[0].Weight = 0 }},
		{
			name:   "negative weight",
			mutate: func(s *Scene) { s.Root.Children[0].Weight = -1 },
			want:   errors.ErrCodeInvalidWeight,
		},
		{
			name:   "NaN weight",
			mutate: func(s *Scene) { s.Root.Children[1].Children[0].Weight = math.NaN() },
			want:   errors.ErrCodeInvalidWeight,
		},
		{
			name:   "negative spacing",
			mutate: func(s *Scene) { s.Root.Spacing = ptr(-4) },
			want:   errors.ErrCodeInvalidSpacing,
		},
		{
			name:   "negative leaf size",
			mutate: func(s *Scene) { s.Root.Children[0].Height = -1 },
			want:   errors.ErrCodeInvalidSize,
		},
		{
			name:   "negative proposal",
			mutate: func(s *Scene) { s.Proposal.Width = ptr(-800) },
			want:   errors.ErrCodeInvalidSize,
		},
		{
			name:   "unknown orientation",
			mutate: func(s *Scene) { s.Root.Orientation = "grid" },
			want:   errors.ErrCodeInvalidOrientation,
		},
		{
			name:   "duplicate id",
			mutate: func(s *Scene) { s.Root.Children[1].Children[1].ID = "sidebar" },
			want:   errors.ErrCodeInvalidScene,
		},
		{
			name: "user id matches generated root id",
			mutate: func(s *Scene) {
				s.Root.ID = ""
				s.Root.Children[0].ID = RootID
			},
			want: errors.ErrCodeInvalidScene,
		},
		{
			name:   "root id on a named root is fine",
			mutate: func(s *Scene) { s.Root.Children[0].ID = RootID },
		},
		{
			name:   "slash in id",
			mutate: func(s *Scene) { s.Root.Children[0].ID = "a/b" },
			want:   errors.ErrCodeInvalidScene,
		},
		{
			name:   "leaf with children",
			mutate: func(s *Scene) { s.Root.Children[0].Children = []Node{{}} },
			want:   errors.ErrCodeInvalidScene,
		},
		{
			name:   "container with size",
			mutate: func(s *Scene) { s.Root.Children[1].Width = 10 },
			want:   errors.ErrCodeInvalidScene,
		},
		{
			name:   "leaf with alignment",
			mutate: func(s *Scene) { s.Root.Children[0].Alignment = "center" },
			want:   errors.ErrCodeInvalidScene,
		},
		{
			name:   "unknown sizing",
			mutate: func(s *Scene) { s.Root.Children[0].Sizing = "stretch" },
			want:   errors.ErrCodeInvalidScene,
		},
		{
			name:   "unknown alignment is not an error",
			mutate: func(s *Scene) { s.Root.Alignment = "baseline" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := dashboard()
			tt.mutate(s)
			err := Validate(s)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("Validate() code = %q (%v), want %q", got, err, tt.want)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("Validate(nil) = %v, want %s", err, errors.ErrCodeInvalidScene)
	}
}

func TestUnknownAlignments(t *testing.T) {
	s := dashboard()
	s.Root.Alignment = "baseline"
	s.Root.Children[1].Alignment = "center"
	s.Root.Children[1].Children = append(s.Root.Children[1].Children, Node{
		Orientation: OrientationRow,
		Alignment:   "justify",
	})

	want := []string{"page", "root/1/2"}
	if diff := cmp.Diff(want, UnknownAlignments(s)); diff != "" {
		t.Errorf("UnknownAlignments() mismatch (-want +got):\n%s", diff)
	}
}
