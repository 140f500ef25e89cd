// Command grpf runs the GRPF zero/pole search over a rectangular region of
// the complex plane and prints what it finds.
//
// Demo only: the sample function is a small rational function with known
// zeros at -1, +1, i and a pole at -i, the same one grpf_test.go checks
// against.
package main

import (
	"fmt"
	"os"

	"github.com/EP-Guy/grpf/grpf"
	"github.com/EP-Guy/grpf/internal/dbg"
	"github.com/EP-Guy/grpf/internal/plot"
	"github.com/EP-Guy/grpf/mesh"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("grpf", "Global complex Roots and Poles Finder")

	reLo = app.Flag("re-lo", "lower bound of the real axis").Default("-2").Float64()
	reHi = app.Flag("re-hi", "upper bound of the real axis").Default("2").Float64()
	imLo = app.Flag("im-lo", "lower bound of the imaginary axis").Default("-2").Float64()
	imHi = app.Flag("im-hi", "upper bound of the imaginary axis").Default("2").Float64()
	r    = app.Flag("spacing", "initial mesh node spacing").Default("0.25").Float64()

	maxIter  = app.Flag("max-iterations", "refinement iteration budget").Default("100").Int()
	maxNodes = app.Flag("max-nodes", "tessellation node budget").Default("500000").Int()
	tol      = app.Flag("tolerance", "candidate-edge convergence tolerance").Default("1e-9").Float64()
	parallel = app.Flag("parallel", "evaluate the function across goroutines").Bool()

	plotPath = app.Flag("plot", "write a diagnostic PNG of the final mesh to this path").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	params := grpf.DefaultParams()
	params.MaxIterations = *maxIter
	params.MaxNodes = *maxNodes
	params.Tolerance = *tol
	params.Multithreading = *parallel

	seeds := mesh.RectangularDomain(complex(*reLo, *imLo), complex(*reHi, *imHi), *r)

	runTag := new(int)
	fmt.Printf("run %s: %d seed points over [%g,%g] x [%g,%g]i\n", dbg.Name(runTag), len(seeds), *reLo, *reHi, *imLo, *imHi)

	res, err := grpf.RunWithPlotData(demoFunc, seeds, params)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	fmt.Println(aurora.Green(fmt.Sprintf("zeros (%d):", len(res.Zeros))))
	for _, z := range res.Zeros {
		fmt.Printf("  %v\n", z)
	}
	fmt.Println(aurora.Red(fmt.Sprintf("poles (%d):", len(res.Poles))))
	for _, p := range res.Poles {
		fmt.Printf("  %v\n", p)
	}

	if *plotPath != "" {
		if err := plot.Render(res, plot.Options{OutputPath: *plotPath}); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}
}

func demoFunc(z complex128) complex128 {
	return (z*z - 1) * (z - 1i) / (z + 1i)
}
