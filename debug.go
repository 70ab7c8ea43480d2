//go:build debug

package mess

import "fmt"

// assertHashConsistent panics if p's incrementally maintained Hash
// disagrees with a full recomputation from scratch. Compiled in only
// with the "debug" build tag; MakeMove calls this after every move.
func assertHashConsistent(p *Position) {
	if want := ZobristHash(p); p.Hash != want {
		panic(fmt.Sprintf("mess: incremental hash %x does not match recomputed hash %x", uint64(p.Hash), uint64(want)))
	}
}
