package decmath

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0.1, 0.2, 0.3},
		{0.7, 0.1, 0.8},
		{1.1, 2.2, 3.3},
		{0.0000001, 0.0000002, 0.0000003},
		{-0.1, -0.2, -0.3},
		{-0.1, 0.1, 0},
		{2.3, -1.1, 1.2},
		{0, 0, 0},
		{1, 2, 3},
		{12345678.9, 0.1, 12345679},
	}
	for _, tt := range tests {
		got := Add(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Add(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0.3, 0.1, 0.2},
		{1, 0.9, 0.1},
		{1.5, 1.2, 0.3},
		{0.0000003, 0.0000001, 0.0000002},
		{-0.1, 0.2, -0.3},
		{0, 0, 0},
		{10, 3, 7},
	}
	for _, tt := range tests {
		got := Sub(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Sub(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{1.2, 2.1, 2.52},
		{0.1, 0.2, 0.02},
		{19.9, 100, 1990},
		{0.7, 100, 70},
		{-1.5, 2, -3},
		{0, 123.456, 0},
		{3, 4, 12},
	}
	for _, tt := range tests {
		got := Mul(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Mul(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDiv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want float64
		}{
			{0.3, 0.1, 3},
			{1.2, 0.2, 6},
			{-4.2, 2.1, -2},
			{0, 7, 0},
			{10, 4, 2.5},
		}
		for _, tt := range tests {
			got, err := Div(tt.a, tt.b)
			if err != nil {
				t.Errorf("Div(%v, %v) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Div(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("rounded", func(t *testing.T) {
		got, err := Div(8.73, 2.16)
		if err != nil {
			t.Fatalf("Div(8.73, 2.16) failed: %v", err)
		}
		if r := Round(got, 2); r != 4.04 {
			t.Errorf("Round(Div(8.73, 2.16), 2) = %v, want 4.04", r)
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		for _, a := range []float64{0, 1, -1, 0.1, 1e15, -1e-15} {
			_, err := Div(a, 0)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("Div(%v, 0) = %v, want ErrDivisionByZero", a, err)
			}
		}
	})
}

func TestRound(t *testing.T) {
	tests := []struct {
		x     float64
		scale int
		want  float64
	}{
		{4.0416666666666667, 2, 4.04},
		{2.345, 1, 2.3},
		{2.5, 0, 3},
		{1990, 2, 1990},
		{0.145, 2, 0.14}, // 0.145*100 is 14.499999999999998
		{-1.25, 1, -1.3},
		{12345, -2, 12300},
	}
	for _, tt := range tests {
		got := Round(tt.x, tt.scale)
		if got != tt.want {
			t.Errorf("Round(%v, %v) = %v, want %v", tt.x, tt.scale, got, tt.want)
		}
	}
}

func TestAdd_signFlip(t *testing.T) {
	pairs := [][2]float64{
		{0.1, 0.2},
		{1.5, -0.7},
		{-2.25, -3.75},
		{123.456, 0.001},
		{0, 0.3},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if got, want := Add(a, b), Sub(a, -b); got != want {
			t.Errorf("Add(%v, %v) = %v, Sub(%v, %v) = %v, want equal", a, b, got, a, -b, want)
		}
	}
}

func TestAdd_specialValues(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	if got := Add(nan, 1); !math.IsNaN(got) {
		t.Errorf("Add(NaN, 1) = %v, want NaN", got)
	}
	if got := Add(inf, 1); !math.IsInf(got, 1) {
		t.Errorf("Add(+Inf, 1) = %v, want +Inf", got)
	}
	if got := Sub(1, inf); !math.IsInf(got, -1) {
		t.Errorf("Sub(1, +Inf) = %v, want -Inf", got)
	}
	if got := Mul(nan, 2); !math.IsNaN(got) {
		t.Errorf("Mul(NaN, 2) = %v, want NaN", got)
	}
	if got, err := Div(nan, 2); err != nil || !math.IsNaN(got) {
		t.Errorf("Div(NaN, 2) = %v, %v, want NaN, nil", got, err)
	}
	// Magnitudes beyond the decimal precision fall back to native floats.
	if got := Add(1e300, 1e300); got != 2e300 {
		t.Errorf("Add(1e300, 1e300) = %v, want 2e300", got)
	}
	if got := Add(1e308, 1e308); !math.IsInf(got, 1) {
		t.Errorf("Add(1e308, 1e308) = %v, want +Inf", got)
	}
}

func FuzzAdd_signFlip(f *testing.F) {
	f.Add(0.1, 0.2)
	f.Add(-1.5, 2.25)
	f.Add(0.0, 0.0)
	f.Fuzz(func(t *testing.T, a, b float64) {
		if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
			t.Skip()
		}
		got, want := Add(a, b), Sub(a, -b)
		if got != want {
			t.Errorf("Add(%v, %v) = %v, Sub(%v, %v) = %v, want equal", a, b, got, a, -b, want)
		}
	})
}
