// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

//go:generate go run ../cmd/lanegen -output z_kernels_amd64.go

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// Kernel is an accelerated implementation of one operation for one shape.
//
// Exactly one of Unary and Binary must be set, matching Op.Arity. The
// function receives slices of exactly Lanes elements and writes every lane
// listed in Covers (all lanes when Covers is nil) into dst. Lanes outside
// Covers are completed by the fallback after the kernel returns.
type Kernel[T Lanes] struct {
	// Name identifies the kernel in routes and logs. Defaults to
	// "<op>_<shape>_<capability>".
	Name string

	Op    Op
	Lanes int

	// Requires is the capability that must be present for the kernel to be
	// selected.
	Requires Capability

	// Priority orders kernels registered for the same (Op, shape); the
	// highest priority whose capability is present wins. Ties go to the
	// kernel registered last.
	Priority int

	// Covers lists the lane indices the kernel populates, nil for all.
	Covers []int

	Unary  func(dst, a []T)
	Binary func(dst, a, b []T)

	uncovered []int
}

type routeKey struct {
	op    Op
	shape Shape
}

// candidate is the type-erased view of a registered *Kernel[T].
type candidate struct {
	kernel   any
	name     string
	requires Capability
	priority int
	partial  bool
	seq      int
}

var registry struct {
	mu         sync.Mutex
	candidates map[routeKey][]candidate
	seq        int
}

// resolved is the published routing table. nil means it must be rebuilt.
var resolved atomic.Pointer[map[routeKey]candidate]

// Register adds an accelerated kernel to the dispatch table.
//
// The kernel becomes eligible on the next dispatch; selection among kernels
// for the same (op, shape) happens once when the table is rebuilt, not per
// call. Kernels must be written for the predeclared element types; vectors
// of named element types (such as a ~int8 type) always take the fallback.
func Register[T Lanes](k Kernel[T]) error {
	shape := ShapeOf[T](k.Lanes)
	if k.Name == "" {
		k.Name = fmt.Sprintf("%s_%s_%s", k.Op, shape, k.Requires)
	}
	if err := validateKernel(&k, shape); err != nil {
		return &RegistrationError{Kernel: k.Name, cause: err}
	}
	if k.Covers != nil {
		k.Covers = slices.Clone(k.Covers)
		k.uncovered = complement(k.Covers, k.Lanes)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.candidates == nil {
		registry.candidates = make(map[routeKey][]candidate)
	}
	registry.seq++
	key := routeKey{op: k.Op, shape: shape}
	registry.candidates[key] = append(registry.candidates[key], candidate{
		kernel:   &k,
		name:     k.Name,
		requires: k.Requires,
		priority: k.Priority,
		partial:  len(k.uncovered) > 0,
		seq:      registry.seq,
	})
	resolved.Store(nil)
	return nil
}

// mustRegister is used by generated init code, where a rejected kernel is a
// generator bug.
func mustRegister[T Lanes](k Kernel[T]) {
	if err := Register(k); err != nil {
		panic(err)
	}
}

func validateKernel[T Lanes](k *Kernel[T], shape Shape) error {
	if !predeclared[T]() {
		return errors.New("kernels must use a predeclared element type")
	}
	if !k.Op.Supports(shape.Kind) {
		return &UnsupportedError{Op: k.Op, Kind: shape.Kind}
	}
	if err := shape.Validate(); err != nil {
		return err
	}
	if k.Requires >= numCapabilities {
		return fmt.Errorf("unknown capability %d", k.Requires)
	}
	switch {
	case k.Op.Arity() == 1 && (k.Unary == nil || k.Binary != nil):
		return fmt.Errorf("%w: %s needs a Unary function only", ErrArity, k.Op)
	case k.Op.Arity() == 2 && (k.Binary == nil || k.Unary != nil):
		return fmt.Errorf("%w: %s needs a Binary function only", ErrArity, k.Op)
	}
	if k.Covers == nil {
		return nil
	}
	if len(k.Covers) == 0 {
		return errors.New("empty lane coverage; use nil to cover every lane")
	}
	seen := make([]bool, k.Lanes)
	for _, i := range k.Covers {
		if i < 0 || i >= k.Lanes {
			return fmt.Errorf("covered lane %d out of range for %s", i, shape)
		}
		if seen[i] {
			return fmt.Errorf("covered lane %d listed twice", i)
		}
		seen[i] = true
	}
	return nil
}

func predeclared[T Lanes]() bool {
	var zero T
	switch any(zero).(type) {
	case int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// complement returns the lanes in [0, n) not listed in covers, or nil if
// covers lists them all.
func complement(covers []int, n int) []int {
	seen := make([]bool, n)
	for _, i := range covers {
		seen[i] = true
	}
	var rest []int
	for i, ok := range seen {
		if !ok {
			rest = append(rest, i)
		}
	}
	return rest
}

// routeTable returns the resolved (op, shape) -> kernel table, building it
// on first use after a registration. Resolution is logged after registry.mu
// is released so a handler may call back into the package.
func routeTable() map[routeKey]candidate {
	if t := resolved.Load(); t != nil {
		return *t
	}
	t, registered, built := resolveRouteTable()
	if built {
		logRouteTable(t, registered)
	}
	return t
}

// resolveRouteTable builds and publishes the table unless another goroutine
// already did. registered is the number of (op, shape) keys with kernels.
func resolveRouteTable() (t map[routeKey]candidate, registered int, built bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if p := resolved.Load(); p != nil {
		return *p, 0, false
	}
	t = buildRouteTable()
	resolved.Store(&t)
	return t, len(registry.candidates), true
}

// buildRouteTable picks the best available candidate per key. Caller holds
// registry.mu.
func buildRouteTable() map[routeKey]candidate {
	t := make(map[routeKey]candidate, len(registry.candidates))
	for key, cands := range registry.candidates {
		var best *candidate
		for i := range cands {
			c := &cands[i]
			if !Has(c.requires) {
				continue
			}
			if best == nil || cmp.Or(
				cmp.Compare(c.priority, best.priority),
				cmp.Compare(c.seq, best.seq)) > 0 {
				best = c
			}
		}
		if best != nil {
			t[key] = *best
		}
	}
	return t
}

func logRouteTable(t map[routeKey]candidate, registered int) {
	l := logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for key, c := range t {
		l.Debug("lanes: route resolved",
			slog.String("op", key.op.String()),
			slog.String("shape", key.shape.String()),
			slog.String("kernel", c.name),
			slog.String("capability", c.requires.String()))
	}
	l.Debug("lanes: dispatch table built",
		slog.Int("accelerated", len(t)),
		slog.Int("registered", registered))
}

// lookup returns the kernel serving (op, shape) for element type T, or nil
// when the fallback must be used.
func lookup[T Lanes](op Op, shape Shape) *Kernel[T] {
	c, ok := routeTable()[routeKey{op: op, shape: shape}]
	if !ok {
		return nil
	}
	k, _ := c.kernel.(*Kernel[T])
	return k
}

// Route describes how one (operation, shape) pair is served.
type Route struct {
	Op    Op
	Shape Shape

	// Accelerated is true when a kernel is selected; Requires and Kernel
	// then name its capability and identity.
	Accelerated bool
	Requires    Capability
	Kernel      string

	// Partial is true when the selected kernel leaves lanes to the fallback.
	Partial bool

	// Registered counts every kernel registered for the pair, selected or not.
	Registered int
}

// RouteOf reports how op on shape is dispatched in this process.
func RouteOf(op Op, shape Shape) Route {
	key := routeKey{op: op, shape: shape}
	r := Route{Op: op, Shape: shape}
	if c, ok := routeTable()[key]; ok {
		r.Accelerated = true
		r.Requires = c.requires
		r.Kernel = c.name
		r.Partial = c.partial
	}
	registry.mu.Lock()
	r.Registered = len(registry.candidates[key])
	registry.mu.Unlock()
	return r
}

// Routes reports the route of every operation on every shape it supports,
// ordered by operation, then shape.
func Routes() []Route {
	var routes []Route
	for _, op := range Ops() {
		for _, s := range Shapes() {
			if op.Supports(s.Kind) {
				routes = append(routes, RouteOf(op, s))
			}
		}
	}
	return routes
}
