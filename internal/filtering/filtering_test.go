package filtering

import (
	"testing"

	"github.com/spigell/automatcher/internal/tinder"
)

type photoSet map[string]struct{}

func (s photoSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s photoSet) Len() int { return len(s) }

func rec(id string, photos ...string) *tinder.Recommendation {
	r := &tinder.Recommendation{Type: "user", UserInfo: tinder.UserInfo{ID: id}}
	for _, p := range photos {
		r.UserInfo.Photos = append(r.UserInfo.Photos, &tinder.Photo{ID: p})
	}
	return r
}

func TestTeasedMatch(t *testing.T) {
	t.Parallel()

	index := photoSet{"p1": {}, "p7": {}}

	tests := []struct {
		name  string
		rec   *tinder.Recommendation
		index PhotoIndex
		want  bool
	}{
		{name: "first photo overlaps", rec: rec("u1", "p1", "p2"), index: index, want: true},
		{name: "last photo overlaps", rec: rec("u2", "p3", "p7"), index: index, want: true},
		{name: "no overlap", rec: rec("u3", "p3", "p4"), index: index, want: false},
		{name: "no photos", rec: rec("u4"), index: index, want: false},
		{name: "empty index", rec: rec("u5", "p1"), index: photoSet{}, want: false},
		{name: "nil recommendation", rec: nil, index: index, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewTeased(tt.index).Match(tt.rec); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStep(t *testing.T) {
	var step Step
	for _, kept := range []bool{true, false, true} {
		step.Observe(kept)
	}

	want := Step{Initial: 3, Dropped: 1, Left: 2}
	if step != want {
		t.Fatalf("expected step %+v, got %+v", want, step)
	}

	step.Merge(Step{Initial: 1, Dropped: 1})
	if step.Initial != 4 || step.Dropped != 2 || step.Left != 2 {
		t.Fatalf("unexpected merged step: %+v", step)
	}
}
