package demo

import (
	"github.com/phil-mansfield/table"
	"github.com/pmansfield/lapfmm/geom"
	"github.com/pmansfield/lapfmm/laplace"
)

// ReadCatalog reads a whitespace-delimited text catalog of point
// charges: one particle per row, with x, y, z, and charge in columns
// xCol, yCol, zCol, qCol (0-indexed).
func ReadCatalog(file string, xCol, yCol, zCol, qCol int) ([]Source, error) {
	colIdxs := []int{xCol, yCol, zCol, qCol}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs, qs := cols[0], cols[1], cols[2], cols[3]
	sources := make([]Source, len(xs))
	for i := range xs {
		sources[i] = Source{
			Pos: geom.Pt(xs[i], ys[i], zs[i]),
			Q:   laplace.Charge(qs[i]),
		}
	}
	return sources, nil
}
