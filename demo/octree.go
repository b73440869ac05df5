// Package demo is the external collaborator that drives the laplace
// kernel: a minimal, non-adaptive two-level octree, binary -- er, text
// -- catalog I/O, and a gcfg-driven run configuration. None of this
// lives inside the kernel itself; it exists only to exercise the six
// operators end to end the way gotetra's render/main and los/main
// layers exercise its geom/mat packages.
package demo

import (
	"github.com/pmansfield/lapfmm/geom"
	"github.com/pmansfield/lapfmm/laplace"
)

// Source is a single point charge to be inserted into the tree.
type Source struct {
	Pos geom.Point
	Q   laplace.Charge
}

// Box is one node of the two-level tree: a cube of half-width HalfWidth
// centered at Center, holding the sources that fall inside it (leaves
// only) and the multipole/local expansions built around Center.
type Box struct {
	Center    geom.Point
	HalfWidth float64
	Sources   []Source
	Multipole laplace.Multipole
	Local     laplace.Local
	Children  []*Box
}

// Tree is a two-level octree: a root box split once into up to 8 octant
// children. It exists purely to give P2M/M2M/M2L/L2L/M2P/L2P a minimal,
// concrete traversal to run across -- it makes no attempt at adaptive
// refinement, multipole-acceptance-criterion bookkeeping, or periodic
// boundaries, all Non-goals of the kernel it drives.
type Tree struct {
	Root *Box
	k    *laplace.Kernel
}

// BuildTwoLevel partitions sources into octants of a cube centered at
// center with half-width halfWidth, builds multipole expansions at
// every leaf, and shifts them up to the root with M2M.
func BuildTwoLevel(k *laplace.Kernel, center geom.Point, halfWidth float64, sources []Source) *Tree {
	root := &Box{Center: center, HalfWidth: halfWidth, Multipole: k.NewMultipole()}
	children := make([]*Box, 8)
	for octant := 0; octant < 8; octant++ {
		offset := octantOffset(octant, halfWidth/2)
		children[octant] = &Box{
			Center:    center.Add(offset),
			HalfWidth: halfWidth / 2,
			Multipole: k.NewMultipole(),
		}
	}
	for _, s := range sources {
		octant := octantOf(s.Pos, center)
		children[octant].Sources = append(children[octant].Sources, s)
	}
	for _, child := range children {
		for _, s := range child.Sources {
			k.P2M(child.Multipole, s.Q, child.Center, s.Pos)
		}
		k.M2M(root.Multipole, child.Multipole, root.Center.Sub(child.Center))
	}
	root.Children = children
	return &Tree{Root: root, k: k}
}

// EvaluateFar evaluates the tree's multipole expansion directly at a
// target far from the root (M2P), the cheapest possible interaction
// this toy tree supports.
func (t *Tree) EvaluateFar(target geom.Point) laplace.Result {
	var r laplace.Result
	t.k.M2P(&r, t.Root.Multipole, target.Sub(t.Root.Center))
	return r
}

// EvaluateNear builds a local expansion at a target-side box with M2L,
// shifts it down to the target octant with L2L, and evaluates it there
// with L2P -- exercising the full downward pass the way a real FMM
// traversal would for a well-separated pair of boxes.
func (t *Tree) EvaluateNear(targetBoxCenter, targetHalfWidth float64, target geom.Point) laplace.Result {
	targetRoot := &Box{Center: geom.Pt(targetBoxCenter, targetBoxCenter, targetBoxCenter), HalfWidth: targetHalfWidth}
	parentLocal := t.k.NewLocal()
	t.k.M2L(parentLocal, t.Root.Multipole, targetRoot.Center.Sub(t.Root.Center))

	childCenter := targetRoot.Center.Add(octantOffset(octantOf(target, targetRoot.Center), targetHalfWidth/2))
	childLocal := t.k.NewLocal()
	t.k.L2L(childLocal, parentLocal, childCenter.Sub(targetRoot.Center))

	var r laplace.Result
	t.k.L2P(&r, childLocal, target.Sub(childCenter))
	return r
}

// EvaluateDirect sums every source's direct P2P interaction with
// target, the ground truth the far/near evaluations are checked
// against.
func (t *Tree) EvaluateDirect(target geom.Point) laplace.Result {
	var r laplace.Result
	for _, child := range t.Root.Children {
		for _, s := range child.Sources {
			t.k.Eval(&r, s.Q, s.Pos, target)
		}
	}
	return r
}

func octantOf(p, center geom.Point) int {
	octant := 0
	if p[0] >= center[0] {
		octant |= 1
	}
	if p[1] >= center[1] {
		octant |= 2
	}
	if p[2] >= center[2] {
		octant |= 4
	}
	return octant
}

func octantOffset(octant int, halfWidth float64) geom.Point {
	sign := func(bit int) float64 {
		if octant&bit != 0 {
			return halfWidth
		}
		return -halfWidth
	}
	return geom.Pt(sign(1), sign(2), sign(4))
}
