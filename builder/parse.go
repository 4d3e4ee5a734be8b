// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a topology spec of the form "kind:args":
//
//	cycle:N  path:N  star:N  complete:N
//	grid:RxC  bipartite:LxR
//	sparse:N:P  random:N:M
func Parse(spec string) (Constructor, error) {
	kind, rest, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	bad := func(why string) error { return fmt.Errorf("%w: %q: %s", ErrBadSpec, spec, why) }

	one := func() (int, error) {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return 0, bad("want an integer size")
		}
		return n, nil
	}
	pair := func(sep string) (int, string, error) {
		a, b, ok := strings.Cut(rest, sep)
		if !ok {
			return 0, "", bad("want two values separated by " + strconv.Quote(sep))
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, "", bad("want an integer size")
		}
		return n, b, nil
	}

	switch kind {
	case "cycle", "path", "star", "complete":
		n, err := one()
		if err != nil {
			return nil, err
		}
		return map[string]func(int) Constructor{
			"cycle": Cycle, "path": Path, "star": Star, "complete": Complete,
		}[kind](n), nil
	case "grid", "bipartite":
		a, bs, err := pair("x")
		if err != nil {
			return nil, err
		}
		b, err := strconv.Atoi(bs)
		if err != nil {
			return nil, bad("want an integer size")
		}
		if kind == "grid" {
			return Grid(a, b), nil
		}
		return CompleteBipartite(a, b), nil
	case "sparse":
		n, ps, err := pair(":")
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, bad("want a probability")
		}
		return RandomSparse(n, p), nil
	case "random":
		n, ms, err := pair(":")
		if err != nil {
			return nil, err
		}
		m, err := strconv.Atoi(ms)
		if err != nil {
			return nil, bad("want an integer edge count")
		}
		return RandomEdges(n, m), nil
	default:
		return nil, bad("unknown kind")
	}
}
