// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package lfg implements an additive Lagged Fibonacci generator with
// optional carry, and the consistency-search attack that recovers its
// lags, modulus, and carry mode from a run of raw outputs.
package lfg

// State is the full parameter set of an additive Lagged Fibonacci
// generator: Xₙ = (Xₙ₋ᵣ + Xₙ₋ₛ + carry_in) mod m.
type State struct {
	R, S      uint64
	M         uint64
	Window    []uint64
	WithCarry bool
	Carry     bool
}

// Equal reports whether two States describe the same generator. R and S are
// canonicalised so R <= S before comparison; the carry bit is compared only
// when WithCarry is set, since it is meaningless otherwise.
func (s State) Equal(other State) bool {
	ar, as := canonicalLags(s.R, s.S)
	br, bs := canonicalLags(other.R, other.S)

	if s.M != other.M || ar != br || as != bs {
		return false
	}
	if s.WithCarry != other.WithCarry {
		return false
	}
	if s.WithCarry && s.Carry != other.Carry {
		return false
	}
	if len(s.Window) != len(other.Window) {
		return false
	}
	for i := range s.Window {
		if s.Window[i] != other.Window[i] {
			return false
		}
	}
	return true
}

func canonicalLags(r, s uint64) (uint64, uint64) {
	if r > s {
		return s, r
	}
	return r, s
}

// Generator is an additive Lagged Fibonacci generator.
type Generator struct {
	r, s      uint64
	m         uint64
	window    []uint64 // oldest at front, length s
	withCarry bool
	carry     bool
}

// New creates a Generator from defining parameters, validating that
// m > 0, 0 < r < s < m, and the seed window has length max(r, s) with
// every value in [0, m). r and s may be given in either order.
func New(r, s, m uint64, seed []uint64, withCarry bool) (*Generator, error) {
	if m == 0 {
		return nil, ErrInvalidModulus
	}

	r, s = canonicalLags(r, s)
	if r == 0 || r >= s || s >= m {
		return nil, ErrInvalidLags
	}

	if uint64(len(seed)) != s {
		return nil, ErrInvalidSeedWindow
	}
	for _, v := range seed {
		if v >= m {
			return nil, ErrInvalidSeedWindow
		}
	}

	window := make([]uint64, len(seed))
	copy(window, seed)

	return &Generator{r: r, s: s, m: m, window: window, withCarry: withCarry}, nil
}

// FromState reconstructs a Generator from a previously captured State.
func FromState(s State) (*Generator, error) {
	g, err := New(s.R, s.S, s.M, s.Window, s.WithCarry)
	if err != nil {
		return nil, err
	}
	g.carry = s.Carry
	return g, nil
}

// Next returns the next output and advances the generator, computing
// v = (q[-r] + q[-s] + carry_in) mod m, with carry_out set only when
// with_carry is enabled and the unreduced sum wrapped the modulus.
func (g *Generator) Next() uint64 {
	n := len(g.window)
	vr := g.window[n-int(g.r)]
	vs := g.window[n-int(g.s)]

	carryIn := uint64(0)
	if g.carry {
		carryIn = 1
	}

	sum := vr + vs + carryIn
	value := sum % g.m

	overflow := value < vr || value < vs
	g.carry = g.withCarry && overflow

	g.window = append(g.window[1:], value)

	return value
}

// Snapshot returns the generator's current State.
func (g *Generator) Snapshot() State {
	window := make([]uint64, len(g.window))
	copy(window, g.window)

	return State{
		R: g.r, S: g.s, M: g.m,
		Window:    window,
		WithCarry: g.withCarry,
		Carry:     g.carry,
	}
}
