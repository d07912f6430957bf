// Command rgcluster is a standalone CLI for the randomized-greedy/CGGC
// core: load an edge-list graph, run one algorithm, and print the
// resulting modularity and cluster sizes.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gilchrisn/rgcluster/pkg/loader"
	"github.com/gilchrisn/rgcluster/pkg/rg"
)

func usage() {
	fmt.Println("Usage: rgcluster <edgelist-file> <rg|cggc> [param=value ...]")
	fmt.Println()
	fmt.Println("rg params:   k (default 1), runs (default 1)")
	fmt.Println("cggc params: init_clusters (default 2), restart_k (default 1), iterative (default false)")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Println("  rgcluster graph.txt rg k=2 runs=10")
	fmt.Println("  rgcluster graph.txt cggc init_clusters=4 iterative=true")
}

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(1)
	}

	path := os.Args[1]
	mode := os.Args[2]
	params := parseParams(os.Args[3:])

	g, err := loader.LoadEdgeList(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading graph: %v\n", err)
		os.Exit(1)
	}

	logger := rg.NewConfig().CreateLogger()
	seed := time.Now().UnixNano()

	switch mode {
	case "rg":
		k := intParam(params, "k", 1)
		runs := intParam(params, "runs", 1)
		result, err := rg.RunRG(g, k, runs, seed, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		displayResults("rg", result)
	case "cggc":
		initClusters := intParam(params, "init_clusters", 2)
		restartK := intParam(params, "restart_k", 1)
		iterative := params["iterative"] == "true"
		result, err := rg.RunCGGC(g, initClusters, restartK, iterative, seed, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		displayResults("cggc", result)
	default:
		fmt.Printf("unknown mode: %s\n\n", mode)
		usage()
		os.Exit(1)
	}
}

func parseParams(args []string) map[string]string {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		for i := 0; i < len(arg); i++ {
			if arg[i] == '=' {
				params[arg[:i]] = arg[i+1:]
				break
			}
		}
	}
	return params
}

func intParam(params map[string]string, key string, def int) int {
	v, ok := params[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func displayResults(mode string, result *rg.Result) {
	fmt.Printf("=== %s clustering ===\n", mode)
	fmt.Printf("modularity: %.6f\n", result.Q)
	fmt.Printf("clusters:   %d\n", result.Partition.NumClusters())

	for i, c := range result.Partition.Clusters {
		fmt.Printf("  cluster %d: %d nodes\n", i, len(c))
	}
}
