package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"symfact"
)

var (
	strategyFlag = flag.String("strategy", "auto", "auto, unsymmetric or symmetric")
	orderingFlag = flag.String("ordering", "amd", "amd, none, metis, metis-guard, cholmod or best")
	blockSize    = flag.Int64("nb", 32, "numeric kernel block size")
	noSingletons = flag.Bool("no-singletons", false, "disable singleton peeling")
	showInfo     = flag.Bool("info", false, "print the raw info vector")
)

type triplet struct {
	row, col symfact.Int
	value    float64
}

// readTriplets reads "nrow ncol" followed by "row col [value]" lines,
// zero-based, comments starting with '%' or '#'.
func readTriplets(filename string) (nRow, nCol symfact.Int, entries []triplet, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, 0, nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if first {
			if len(fields) < 2 {
				return 0, 0, nil, fmt.Errorf("bad header line: %q", line)
			}
			r, err1 := strconv.ParseInt(fields[0], 10, 64)
			c, err2 := strconv.ParseInt(fields[1], 10, 64)
			if err1 != nil || err2 != nil {
				return 0, 0, nil, fmt.Errorf("bad header line: %q", line)
			}
			nRow, nCol = symfact.Int(r), symfact.Int(c)
			first = false
			continue
		}
		if len(fields) < 2 {
			return 0, 0, nil, fmt.Errorf("bad entry line: %q", line)
		}
		i, err1 := strconv.ParseInt(fields[0], 10, 64)
		j, err2 := strconv.ParseInt(fields[1], 10, 64)
		if err1 != nil || err2 != nil {
			return 0, 0, nil, fmt.Errorf("bad entry line: %q", line)
		}
		x := 1.0
		if len(fields) > 2 {
			if x, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return 0, 0, nil, fmt.Errorf("bad entry line: %q", line)
			}
		}
		entries = append(entries, triplet{symfact.Int(i), symfact.Int(j), x})
	}
	return nRow, nCol, entries, scanner.Err()
}

// compress converts sorted, de-duplicated triplets to column form.
func compress(nCol symfact.Int, entries []triplet) (Ap, Ai []symfact.Int, Ax []float64) {
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].col != entries[b].col {
			return entries[a].col < entries[b].col
		}
		return entries[a].row < entries[b].row
	})
	Ap = make([]symfact.Int, nCol+1)
	for _, e := range entries {
		Ai = append(Ai, e.row)
		Ax = append(Ax, e.value)
		Ap[e.col+1]++
	}
	for j := symfact.Int(0); j < nCol; j++ {
		Ap[j+1] += Ap[j]
	}
	return Ap, Ai, Ax
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [options] matrix.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}

	nRow, nCol, entries, err := readTriplets(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "read failed:", err)
		os.Exit(1)
	}
	Ap, Ai, Ax := compress(nCol, entries)

	ctl := symfact.DefaultControl()
	ctl.BlockSize = symfact.Int(*blockSize)
	ctl.DoSingletons = !*noSingletons
	switch *strategyFlag {
	case "auto":
		ctl.Strategy = symfact.StrategyAuto
	case "unsymmetric":
		ctl.Strategy = symfact.StrategyUnsymmetric
	case "symmetric":
		ctl.Strategy = symfact.StrategySymmetric
	default:
		fmt.Fprintln(os.Stderr, "unknown strategy:", *strategyFlag)
		os.Exit(2)
	}
	switch *orderingFlag {
	case "amd":
		ctl.Ordering = symfact.OrderingAMD
	case "none":
		ctl.Ordering = symfact.OrderingNone
	case "metis":
		ctl.Ordering = symfact.OrderingMetis
	case "metis-guard":
		ctl.Ordering = symfact.OrderingMetisGuard
	case "cholmod":
		ctl.Ordering = symfact.OrderingCholmod
	case "best":
		ctl.Ordering = symfact.OrderingBest
	default:
		fmt.Fprintln(os.Stderr, "unknown ordering:", *orderingFlag)
		os.Exit(2)
	}

	info := make([]float64, symfact.InfoLen)
	sym, err := symfact.QSymbolic(nRow, nCol, Ap, Ai, Ax, nil, nil, ctl, info)
	if err != nil {
		fmt.Fprintln(os.Stderr, "analysis failed:", err)
		os.Exit(1)
	}

	sym.Report(os.Stdout)
	if *showInfo {
		for i, v := range info {
			if v != -1 {
				fmt.Printf("info[%2d] = %g\n", i, v)
			}
		}
	}
}
