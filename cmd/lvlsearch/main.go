// Command lvlsearch runs the lvlsearch engines on YAML problem files.
//
//	lvlsearch shortest --file square.yaml --target 2
//	lvlsearch mst --file square.yaml --method prim -o json
//	lvlsearch tour --file cities.yaml --start 0
//	lvlsearch queens --n 8 --count
//
// Exit codes: 0 on success, 1 on bad input, 2 when the problem has no
// solution (disconnected graph, negative or directed cycle, exhausted node
// budget).
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
