package coord

import "testing"

func TestResolveAbsolutePassThrough(t *testing.T) {
	screen := Size{Width: 1920, Height: 1080}
	got := Resolve(Abs(140), Abs(480), screen, Point{X: 55, Y: 66})
	if got.X != 140 || got.Y != 480 {
		t.Fatalf("expected (140, 480), got (%d, %d)", got.X, got.Y)
	}
}

func TestResolveFraction(t *testing.T) {
	screen := Size{Width: 1920, Height: 1080}
	got := Resolve(Frac(0.5), Frac(0.5), screen, Point{})
	if got.X != 960 || got.Y != 540 {
		t.Fatalf("expected (960, 540), got (%d, %d)", got.X, got.Y)
	}
}

func TestResolveOffsetPositive(t *testing.T) {
	got := Resolve(Off(10), Off(0), Size{Width: 800, Height: 600}, Point{X: 300, Y: 300})
	if got.X != 310 || got.Y != 300 {
		t.Fatalf("expected (310, 300), got (%d, %d)", got.X, got.Y)
	}
}

func TestResolveMixedOffsetAndAbsolute(t *testing.T) {
	// Axes resolve independently: negative offset on x, absolute on y.
	got := Resolve(Off(-9), Abs(60), Size{Width: 800, Height: 600}, Point{X: 100, Y: 100})
	if got.X != 91 || got.Y != 60 {
		t.Fatalf("expected (91, 60), got (%d, %d)", got.X, got.Y)
	}
}

func TestResolveOffsetNegative(t *testing.T) {
	got := Resolve(Off(-9), Off(60), Size{Width: 800, Height: 600}, Point{X: 100, Y: 100})
	if got.X != 91 || got.Y != 160 {
		t.Fatalf("expected (91, 160), got (%d, %d)", got.X, got.Y)
	}
}

func TestInferBoundaryAtOne(t *testing.T) {
	// 1.0 is a fraction of the full dimension, not pixel column 1.
	s := Infer(1.0)
	if s.Kind != Fraction {
		t.Fatalf("expected fraction kind for 1.0, got %v", s.Kind)
	}
	got := Resolve(s, Abs(0), Size{Width: 1920, Height: 1080}, Point{})
	if got.X != 1920 {
		t.Fatalf("expected x=1920, got %d", got.X)
	}
}

func TestInferBoundaryAtZero(t *testing.T) {
	if s := Infer(0); s.Kind != Fraction {
		t.Fatalf("expected fraction kind for 0, got %v", s.Kind)
	}
	if s := Infer(1.0001); s.Kind != Absolute {
		t.Fatalf("expected absolute kind for 1.0001, got %v", s.Kind)
	}
	if s := Infer(-1); s.Kind != Absolute {
		t.Fatalf("expected absolute kind for -1, got %v", s.Kind)
	}
}

func TestResolveIdempotent(t *testing.T) {
	screen := Size{Width: 2560, Height: 1440}
	pointer := Point{X: 123, Y: 456}
	first := Resolve(Frac(0.25), Off(-12), screen, pointer)
	second := Resolve(Frac(0.25), Off(-12), screen, pointer)
	if first != second {
		t.Fatalf("resolution not idempotent: %v vs %v", first, second)
	}
}

func TestResolveFloorsNegativeResults(t *testing.T) {
	got := Resolve(Off(-50), Abs(-3), Size{Width: 800, Height: 600}, Point{X: 10, Y: 10})
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("expected (0, 0), got (%d, %d)", got.X, got.Y)
	}
}

func TestResolvePassesThroughOutOfBounds(t *testing.T) {
	// No upper clamp: out-of-range positions are the external tool's problem.
	got := Resolve(Abs(5000), Off(700), Size{Width: 1920, Height: 1080}, Point{X: 0, Y: 900})
	if got.X != 5000 || got.Y != 1600 {
		t.Fatalf("expected (5000, 1600), got (%d, %d)", got.X, got.Y)
	}
}

func TestClamp(t *testing.T) {
	screen := Size{Width: 1920, Height: 1080}
	got := Clamp(Point{X: 5000, Y: 1600}, screen)
	if got.X != 1919 || got.Y != 1079 {
		t.Fatalf("expected (1919, 1079), got (%d, %d)", got.X, got.Y)
	}
	if in := (Point{X: 10, Y: 20}); Clamp(in, screen) != in {
		t.Fatalf("in-bounds point must be unchanged")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Spec
	}{
		{"140", Abs(140)},
		{"0.5", Frac(0.5)},
		{"1", Frac(1)},
		{"1.5", Abs(1.5)},
		{"10j", Off(10)},
		{"-9j", Off(-9)},
		{"0j", Off(0)},
		{"-0.5j", Off(-0.5)},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "abc", "j", "10jj", "1..2", "0x10j"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error", in)
		}
	}
}
