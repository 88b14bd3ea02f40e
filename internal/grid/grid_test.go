package grid

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/qgsim/internal/qgerr"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		nx, ny int
		lx, ly float64
	}{
		{"odd nx", 31, 32, 1, 1},
		{"odd ny", 32, 31, 1, 1},
		{"too small", 2, 32, 1, 1},
		{"zero extent", 32, 32, 0, 1},
		{"negative extent", 32, 32, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.nx, tt.ny, tt.lx, tt.ly)
			if !errors.Is(err, qgerr.ErrConfiguration) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestWavenumbers(t *testing.T) {
	g, err := New(8, 8, 2*math.Pi, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	if g.Nkr != 5 || g.Nl != 8 {
		t.Fatalf("expected nkr=5 nl=8, got %d %d", g.Nkr, g.Nl)
	}
	if g.Kr[0] != 0 || g.Kr[1] != 1 || g.Kr[4] != 4 {
		t.Errorf("unexpected kr array: %v", g.Kr)
	}
	if g.L[1] != 1 || g.L[7] != -1 || g.L[4] != -4 {
		t.Errorf("unexpected l array: %v", g.L)
	}
	if g.InvKrsq[0][0] != 0 {
		t.Errorf("InvKrsq at origin should be zero, got %g", g.InvKrsq[0][0])
	}
	if got := g.Krsq[1][1]; math.Abs(got-2) > 1e-14 {
		t.Errorf("Krsq[1][1] = %g, want 2", got)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	g, err := New(32, 16, 3.0, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	src := g.NewPhysical()
	for j := range src {
		for i := range src[j] {
			src[j][i] = 2*rng.Float64() - 1
		}
	}

	fh := g.NewSpectral()
	out := g.NewPhysical()
	g.Forward(fh, src)
	g.Inverse(out, fh)

	for j := range src {
		for i := range src[j] {
			if math.Abs(out[j][i]-src[j][i]) > 1e-10 {
				t.Fatalf("roundtrip mismatch at (%d,%d): %g vs %g", j, i, out[j][i], src[j][i])
			}
		}
	}
}

func TestForwardSingleMode(t *testing.T) {
	g, _ := New(16, 16, 2*math.Pi, 2*math.Pi)
	src := g.NewPhysical()
	for j := range src {
		for i := range src[j] {
			src[j][i] = math.Cos(2*g.X(i) + 3*g.Y(j))
		}
	}
	fh := g.NewSpectral()
	g.Forward(fh, src)

	n := float64(g.Nx * g.Ny)
	for j := 0; j < g.Nl; j++ {
		for k := 0; k < g.Nkr; k++ {
			want := complex(0, 0)
			if j == 3 && k == 2 {
				want = complex(n/2, 0)
			}
			got := fh[j][k]
			if math.Abs(real(got-want)) > 1e-8 || math.Abs(imag(got-want)) > 1e-8 {
				t.Fatalf("fh[%d][%d] = %v, want %v", j, k, got, want)
			}
		}
	}
}

func TestParsevalSum(t *testing.T) {
	// Domain integral of sin^2(x) over a 2pi x 2pi box is 2 pi^2.
	g, _ := New(8, 8, 2*math.Pi, 2*math.Pi)
	src := g.NewPhysical()
	for j := range src {
		for i := range src[j] {
			src[j][i] = math.Sin(g.X(i))
		}
	}
	fh := g.NewSpectral()
	g.Forward(fh, src)

	a := make([][]float64, g.Nl)
	for j := range a {
		a[j] = make([]float64, g.Nkr)
		for k := range a[j] {
			c := fh[j][k]
			a[j][k] = real(c)*real(c) + imag(c)*imag(c)
		}
	}
	got := g.ParsevalSum(a)
	want := 2 * math.Pi * math.Pi
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("ParsevalSum = %g, want %g", got, want)
	}
}

func TestSecondDerivY(t *testing.T) {
	g, _ := New(8, 32, 2*math.Pi, 2*math.Pi)
	src := make([]float64, g.Ny)
	want := make([]float64, g.Ny)
	for j := range src {
		src[j] = math.Sin(2 * g.Y(j))
		want[j] = -4 * math.Sin(2*g.Y(j))
	}
	dst := make([]float64, g.Ny)
	g.SecondDerivY(dst, src)
	for j := range dst {
		if math.Abs(dst[j]-want[j]) > 1e-10 {
			t.Fatalf("d2/dy2 at %d = %g, want %g", j, dst[j], want[j])
		}
	}
}
