package laplace

import "github.com/pmansfield/lapfmm/geom"

// Kernel is a fixed-order Laplace cartesian-Taylor FMM kernel. It holds
// no mutable state beyond its truncation order: every operator takes
// its expansion and result vectors as arguments and owns none of them,
// so a single Kernel value may be shared freely across goroutines as
// long as callers don't share output vectors across them.
type Kernel struct {
	P     int
	MTerm int
	LTerm int
}

// New builds a Kernel truncated at order p. p must be >= 1.
func New(p int) *Kernel {
	if p < 1 {
		panic("laplace: truncation order P must be >= 1")
	}
	return &Kernel{P: p, MTerm: MTerm(p), LTerm: LTerm(p)}
}

// NewMultipole allocates a zeroed multipole vector sized for k.
func (k *Kernel) NewMultipole() Multipole { return NewMultipole(k.P) }

// NewLocal allocates a zeroed local vector sized for k.
func (k *Kernel) NewLocal() Local { return NewLocal(k.P) }

// P2M accumulates a source's contribution into dst, a multipole
// expansion centered at center.
func (k *Kernel) P2M(dst Multipole, q Charge, center, source geom.Point) {
	P2M(dst, q, center, source)
}

// M2M shifts src up to a parent center, accumulating into dst.
func (k *Kernel) M2M(dst, src Multipole, translation geom.Point) {
	M2M(dst, src, translation)
}

// M2L translates src into a local expansion, accumulating into dst.
func (k *Kernel) M2L(dst Local, src Multipole, translation geom.Point) {
	M2L(dst, src, translation)
}

// M2P evaluates src directly at a target, accumulating into dst.
func (k *Kernel) M2P(dst *Result, src Multipole, translation geom.Point) {
	M2P(dst, src, translation)
}

// L2L shifts src down to a child center, accumulating into dst.
func (k *Kernel) L2L(dst, src Local, translation geom.Point) {
	L2L(dst, src, translation)
}

// L2P evaluates src at a target, accumulating into dst.
func (k *Kernel) L2P(dst *Result, src Local, translation geom.Point) {
	L2P(dst, src, translation)
}

// Eval accumulates the direct P2P interaction of source on target into
// dst, guarding against self-interaction.
func (k *Kernel) Eval(dst *Result, q Charge, source, target geom.Point) {
	Eval(dst, q, source, target)
}
