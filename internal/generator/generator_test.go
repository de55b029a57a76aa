package generator

import (
	"testing"

	"github.com/verte-zerg/addrill/internal/model"
)

func TestGenerateScenarios(t *testing.T) {
	cases := []struct {
		variant model.Variant
		n1, n2  int
		want    string
		answer  int
	}{
		{model.FindLeft, 2, 5, "_ + 2 = 5", 3},
		{model.FindLeft, 3, 2, "_ + 2 = 3", 1},
		{model.FindLeft, 4, 4, "_ + 4 = 4", 0},
		{model.FindRight, 2, 5, "3 + _ = 5", 2},
		{model.FindRight, 3, 2, "1 + _ = 3", 2},
		{model.FindSum, 4, 4, "0 + 4 = _", 4},
	}
	for _, tc := range cases {
		round := Generate(tc.variant, tc.n1, tc.n2)
		if got := round.Equation.String(); got != tc.want {
			t.Fatalf("%s(%d, %d): expected %q, got %q", tc.variant, tc.n1, tc.n2, tc.want, got)
		}
		if round.Answer != tc.answer {
			t.Fatalf("%s(%d, %d): expected answer %d, got %d", tc.variant, tc.n1, tc.n2, tc.answer, round.Answer)
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	for _, variant := range model.Variants() {
		for n1 := 0; n1 <= MaxSeed; n1++ {
			for n2 := 0; n2 <= MaxSeed; n2++ {
				round := Generate(variant, n1, n2)
				eq := round.Equation

				if eq.Hidden() != 1 {
					t.Fatalf("%s(%d, %d): expected exactly one hidden slot, got %d", variant, n1, n2, eq.Hidden())
				}
				for _, s := range []model.Slot{eq.Left, eq.Right, eq.Sum} {
					if s.Set && (s.Value < 0 || s.Value > 2*MaxSeed) {
						t.Fatalf("%s(%d, %d): slot out of range: %d", variant, n1, n2, s.Value)
					}
				}
				full := eq.Fill(round.Answer)
				if full.Left.Value+full.Right.Value != full.Sum.Value {
					t.Fatalf("%s(%d, %d): restored equation inconsistent: %+v", variant, n1, n2, full)
				}
				if again := Generate(variant, n1, n2); again != round {
					t.Fatalf("%s(%d, %d): generator not deterministic", variant, n1, n2)
				}
				if want := expectedAnswer(variant, n1, n2); round.Answer != want {
					t.Fatalf("%s(%d, %d): expected answer %d, got %d", variant, n1, n2, want, round.Answer)
				}
			}
		}
	}
}

func expectedAnswer(variant model.Variant, n1, n2 int) int {
	switch variant {
	case model.FindLeft:
		if n1 > n2 {
			return n1 - n2
		}
		return n2 - n1
	case model.FindRight:
		return min(n1, n2)
	default:
		return max(n1, n2)
	}
}

func TestRandomSourceRange(t *testing.T) {
	src := NewRandomSource(42)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := src.Seed()
		if v < 0 || v > MaxSeed {
			t.Fatalf("seed out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != MaxSeed+1 {
		t.Fatalf("expected all %d values to appear, got %d", MaxSeed+1, len(seen))
	}
}

func TestRandomSourceReproducible(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)
	for i := 0; i < 50; i++ {
		if a.Seed() != b.Seed() {
			t.Fatalf("expected equal sequences for equal seeds")
		}
	}
}

type fixedSource struct {
	values []int
}

func (f *fixedSource) Seed() int {
	v := f.values[0]
	f.values = f.values[1:]
	return v
}

func TestNextDrawsTwoSeeds(t *testing.T) {
	src := &fixedSource{values: []int{2, 5}}
	round := Next(src, model.FindRight)
	if round.Equation.String() != "3 + _ = 5" || round.Answer != 2 {
		t.Fatalf("unexpected round: %s = %d", round.Equation, round.Answer)
	}
	if len(src.values) != 0 {
		t.Fatalf("expected both seeds consumed")
	}
}
