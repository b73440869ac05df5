// Command lapfmmdemo drives the laplace kernel through demo's
// two-level octree dispatcher: it loads a gcfg scenario describing a
// box of sources and one or more targets, sweeps the truncation order
// P up to each box's MaxP, and prints how the far-field evaluation
// converges toward the direct sum. It plays the same role for this
// module that render/main and los/main play for gotetra: a thin CLI
// wrapper, with the numerics living underneath in library packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"

	"github.com/pmansfield/lapfmm/demo"
	"github.com/pmansfield/lapfmm/geom"
	"github.com/pmansfield/lapfmm/laplace"
)

func main() {
	var configFile, profFile string
	flag.StringVar(&configFile, "Config", "", "gcfg scenario file (required).")
	flag.StringVar(&profFile, "Prof", "", "Optional CPU profile output file.")
	flag.Parse()

	if configFile == "" {
		log.Fatal("Must supply -Config.")
	}

	if profFile != "" {
		f, err := os.Create(profFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := demo.Load(configFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	sources, err := loadSources(cfg)
	if err != nil {
		log.Fatal(err.Error())
	}

	boxNames := sortedKeys(cfg.Box)
	targetNames := sortedKeys(cfg.Target)
	if len(boxNames) == 0 {
		log.Fatal("Config must define at least one [Box] section.")
	}
	if len(targetNames) == 0 {
		log.Fatal("Config must define at least one [Target] section.")
	}

	for _, boxName := range boxNames {
		box := cfg.Box[boxName]
		center := geom.Pt(box.X, box.Y, box.Z)
		for _, targetName := range targetNames {
			tgt := cfg.Target[targetName]
			target := geom.Pt(tgt.X, tgt.Y, tgt.Z)

			fmt.Printf("# Box %s, Target %s\n", boxName, targetName)
			fmt.Printf("%-4s %-16s %-16s\n", "P", "PotentialError", "ForceError")
			for _, pt := range demo.Sweep(box.MaxP, sources, center, box.HalfWidth, target) {
				fmt.Printf("%-4d %-16.8e %-16.8e\n", pt.P, pt.PotentialError, pt.ForceError)
			}
		}
	}
}

// loadSources collects every [Source] section into a flat slice,
// reading a catalog file if CatalogFile is set or else taking the
// single X/Y/Z/Q particle.
func loadSources(cfg *demo.RunConfig) ([]demo.Source, error) {
	var sources []demo.Source
	for _, name := range sortedKeys(cfg.Source) {
		s := cfg.Source[name]
		if s.CatalogFile != "" {
			fromFile, err := demo.ReadCatalog(s.CatalogFile, s.XCol, s.YCol, s.ZCol, s.QCol)
			if err != nil {
				return nil, fmt.Errorf("Source '%s': %v", name, err)
			}
			sources = append(sources, fromFile...)
			continue
		}
		sources = append(sources, demo.Source{
			Pos: geom.Pt(s.X, s.Y, s.Z),
			Q:   laplace.Charge(s.Q),
		})
	}
	return sources, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
