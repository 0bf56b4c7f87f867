// Command sparsemat is a thin file-in/file-out wrapper around the sparse
// engine. It decodes operand matrices from the canonical text format, runs
// one operation, and encodes the result. All errors come from the engine and
// are only presented here; nothing is retried or patched up.
//
// Usage:
//
//	sparsemat -op add      -a A.txt -b B.txt -o OUT.txt
//	sparsemat -op sub      -a A.txt -b B.txt -o OUT.txt
//	sparsemat -op mul      -a A.txt -b B.txt -o OUT.txt
//	sparsemat -op transpose -a A.txt -o OUT.txt
//	sparsemat -op info     -a A.txt
//	sparsemat -gen-examples DIR
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sparsemat/sparse"
)

func main() {
	var (
		op       = flag.String("op", "", "operation: add | sub | mul | transpose | info")
		aPath    = flag.String("a", "", "path of the first (or only) operand")
		bPath    = flag.String("b", "", "path of the second operand (add/sub/mul)")
		outPath  = flag.String("o", "", "path of the result file; stdout when empty")
		stats    = flag.Bool("stats", false, "report kernel strategy and duration to stderr")
		genDir   = flag.String("gen-examples", "", "write the example matrix files into DIR and exit")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("sparsemat: ")

	if *genDir != "" {
		if err := writeExamples(*genDir); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *op == "" || *aPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	a, err := sparse.ReadFile(*aPath)
	if err != nil {
		log.Fatal(err)
	}

	var st sparse.Stats
	result, err := run(*op, a, *bPath, &st)
	if err != nil {
		log.Fatal(err)
	}
	if *stats && st.Op != "" {
		fmt.Fprintf(os.Stderr, "%s: strategy=%s duration=%s\n", st.Op, st.Strategy, st.Duration)
	}
	if result == nil {
		return // info already printed
	}

	if *outPath == "" {
		if err = result.Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err = result.WriteFile(*outPath); err != nil {
		log.Fatal(err)
	}
}

// run dispatches one operation. A nil result with a nil error means the
// operation printed its own output (info).
func run(op string, a *sparse.Matrix, bPath string, st *sparse.Stats) (*sparse.Matrix, error) {
	switch op {
	case "add", "sub", "mul":
		if bPath == "" {
			return nil, fmt.Errorf("operation %q needs -b", op)
		}
		b, err := sparse.ReadFile(bPath)
		if err != nil {
			return nil, err
		}
		switch op {
		case "add":
			return a.Add(b, sparse.WithStats(st))
		case "sub":
			return a.Sub(b, sparse.WithStats(st))
		default:
			return a.Mul(b, sparse.WithStats(st))
		}
	case "transpose":
		return a.Transpose(), nil
	case "info":
		fmt.Printf("shape: %d×%d\nnonzero: %d\ndensity: %.6f\n",
			a.Rows(), a.Cols(), a.NonZeroCount(), a.Density())
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// writeExamples reproduces the canonical demo files: two 4×5 operands for
// add/sub and a 3×4 / 4×2 pair for multiplication.
func writeExamples(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := []struct {
		name       string
		rows, cols int
		entries    [][3]int64
	}{
		{"matrix1.txt", 4, 5, [][3]int64{{0, 0, 5}, {0, 3, 8}, {1, 1, 3}, {1, 4, 12}, {2, 2, 7}, {3, 0, 4}, {3, 3, 9}}},
		{"matrix2.txt", 4, 5, [][3]int64{{0, 0, 2}, {0, 2, 6}, {1, 1, 5}, {2, 0, 8}, {2, 3, 4}, {3, 1, 1}, {3, 4, 7}}},
		{"matrix3.txt", 3, 4, [][3]int64{{0, 0, 2}, {0, 2, 3}, {1, 1, 5}, {1, 3, 1}, {2, 0, 4}, {2, 2, 6}}},
		{"matrix4.txt", 4, 2, [][3]int64{{0, 0, 1}, {0, 1, 2}, {1, 0, 3}, {2, 1, 4}, {3, 0, 5}}},
	}
	for _, f := range files {
		m, err := sparse.New(f.rows, f.cols)
		if err != nil {
			return err
		}
		for _, e := range f.entries {
			if err = m.Set(int(e[0]), int(e[1]), e[2]); err != nil {
				return err
			}
		}
		if err = m.WriteFile(filepath.Join(dir, f.name)); err != nil {
			return err
		}
		log.Printf("wrote %s", filepath.Join(dir, f.name))
	}

	return nil
}
