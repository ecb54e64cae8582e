package gate_test

import (
	"math"
	"math/cmplx"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/qgates/gate"
	"github.com/katalvlaran/qgates/internal/unitary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

// fixedGates lists every non-parameterized constructor with its name.
var fixedGates = []struct {
	name string
	fn   func() gate.Gate
}{
	{"ID", gate.ID},
	{"H", gate.H},
	{"NegH", gate.NegH},
	{"X", gate.X},
	{"Y", gate.Y},
	{"Z", gate.Z},
	{"S", gate.S},
	{"T", gate.T},
}

func TestFixedGates_Unitary(t *testing.T) {
	for _, tc := range fixedGates {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.fn()
			require.NoError(t, unitary.Validate(g, unitary.WithEpsilon(tol)))
			require.LessOrEqual(t, unitary.Deviation(g), tol)
		})
	}
}

func TestID_Exact(t *testing.T) {
	g := gate.ID()
	require.Equal(t, complex64(1), g.A)
	require.Equal(t, complex64(0), g.B)
	require.Equal(t, complex64(0), g.C)
	require.Equal(t, complex64(1), g.D)
	for _, row := range g.Matrix() {
		for _, z := range row {
			require.Zero(t, imag(z))
		}
	}
}

func TestMatrixEntries(t *testing.T) {
	c := float32(1 / math.Sqrt2)
	cases := []struct {
		name string
		got  gate.Gate
		want [2][2]complex64
	}{
		{"H", gate.H(), [2][2]complex64{{complex(c, 0), complex(c, 0)}, {complex(c, 0), complex(-c, 0)}}},
		{"NegH", gate.NegH(), [2][2]complex64{{complex(-c, 0), complex(-c, 0)}, {complex(-c, 0), complex(c, 0)}}},
		{"X", gate.X(), [2][2]complex64{{0, 1}, {1, 0}}},
		{"Y", gate.Y(), [2][2]complex64{{0, complex(0, -1)}, {complex(0, 1), 0}}},
		{"Z", gate.Z(), [2][2]complex64{{1, 0}, {0, -1}}},
		{"S", gate.S(), [2][2]complex64{{1, 0}, {0, complex(0, 1)}}},
		{"T", gate.T(), [2][2]complex64{{1, 0}, {0, complex(c, c)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got.Matrix())
			a, b, cc, d := tc.got.Entries()
			require.Equal(t, tc.want, [2][2]complex64{{a, b}, {cc, d}})
		})
	}
}

func TestNegH_IsGlobalPhaseOfH(t *testing.T) {
	require.True(t, unitary.ApproxEqual(gate.NegH(), unitary.Scale(gate.H(), -1)))
	require.NotEqual(t, gate.H(), gate.NegH())
}

func TestHadamard_SelfInverse(t *testing.T) {
	require.True(t, unitary.ApproxEqual(unitary.Mul(gate.H(), gate.H()), gate.ID(), unitary.WithEpsilon(tol)))
}

func TestPauli_Relations(t *testing.T) {
	id := gate.ID()
	require.True(t, unitary.ApproxEqual(unitary.Mul(gate.X(), gate.X()), id))
	require.True(t, unitary.ApproxEqual(unitary.Mul(gate.Y(), gate.Y()), id))
	require.True(t, unitary.ApproxEqual(unitary.Mul(gate.Z(), gate.Z()), id))

	// X·Y = i·Z
	require.True(t, unitary.ApproxEqual(unitary.Mul(gate.X(), gate.Y()), unitary.Scale(gate.Z(), complex(0, 1))))
}

func TestR_Boundaries(t *testing.T) {
	cases := []struct {
		name  string
		theta float32
		want  gate.Gate
	}{
		{"zero=ID", 0, gate.ID()},
		{"pi=Z", math.Pi, gate.Z()},
		{"pi/2=S", math.Pi / 2, gate.S()},
		{"pi/4=T", math.Pi / 4, gate.T()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, unitary.ApproxEqual(gate.R(tc.theta), tc.want, unitary.WithEpsilon(tol)),
				"R(%v) = %v, want %v", tc.theta, gate.R(tc.theta), tc.want)
		})
	}
}

func TestR_ZeroIsExactlyOne(t *testing.T) {
	require.Equal(t, complex64(1), gate.R(0).D)
}

func TestR_UnitaryAcrossAngles(t *testing.T) {
	for _, theta := range []float32{-100, -math.Pi, -1, 0.3, 2, 7 * math.Pi / 3, 1e4} {
		g := gate.R(theta)
		require.NoError(t, unitary.Validate(g), "theta=%v", theta)
		require.InDelta(t, 1.0, cmplx.Abs(complex128(g.D)), tol)
	}
}

func TestR_NegativeAngleIsConjugate(t *testing.T) {
	p, n := gate.R(0.7), gate.R(-0.7)
	require.InDelta(t, real(p.D), real(n.D), tol)
	require.InDelta(t, -imag(p.D), imag(n.D), tol)
}

func TestR_NonFinitePropagates(t *testing.T) {
	for _, theta := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		g := gate.R(theta)
		require.Equal(t, complex64(1), g.A)
		require.Equal(t, complex64(0), g.B)
		require.Equal(t, complex64(0), g.C)
		require.True(t, cmplx.IsNaN(complex128(g.D)), "theta=%v gave %v", theta, g.D)
		require.ErrorIs(t, unitary.Validate(g), unitary.ErrNaNInf)
	}
}

func TestDeterminism(t *testing.T) {
	for _, tc := range fixedGates {
		require.Equal(t, tc.fn(), tc.fn(), tc.name)
	}
	for _, theta := range []float32{0, 0.5, math.Pi, -3} {
		require.Equal(t, gate.R(theta), gate.R(theta))
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "[[(1+0i), (0+0i)], [(0+0i), (1+0i)]]", gate.ID().String())
	require.Equal(t, "[[(0+0i), (0-1i)], [(0+1i), (0+0i)]]", gate.Y().String())
}

var pairRe = regexp.MustCompile(`\[[^\[\]]*\]`)

func TestString_TwoRowMajorPairs(t *testing.T) {
	gates := []gate.Gate{gate.R(1.25)}
	for _, tc := range fixedGates {
		gates = append(gates, tc.fn())
	}
	for _, g := range gates {
		s := g.String()
		require.True(t, strings.HasPrefix(s, "[[") && strings.HasSuffix(s, "]]"), s)

		pairs := pairRe.FindAllString(s[1:len(s)-1], -1)
		require.Len(t, pairs, 2, s)

		m := g.Matrix()
		for i, p := range pairs {
			want := "[" + formatC(m[i][0]) + ", " + formatC(m[i][1]) + "]"
			require.Equal(t, want, p)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	want := gate.R(0.5)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Equal(t, want, gate.R(0.5))
				g, err := gate.Lookup("hadamard")
				assert.NoError(t, err)
				assert.Equal(t, gate.H(), g)
				_ = gate.Names()
			}
		}()
	}
	wg.Wait()
}
