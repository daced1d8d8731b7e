package node

import (
	"cmp"
	"strings"
)

// Compare orders two nodes; negative when a sorts before b
type Compare func(a, b *Node) int

// ByName orders nodes by file name
func ByName(a, b *Node) int {
	return strings.Compare(a.Name(), b.Name())
}

// BySize orders nodes largest first. Nodes without a size sort last; ties
// fall back to name.
func BySize(a, b *Node) int {
	as, aok := a.FileSize()
	bs, bok := b.FileSize()

	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	case aok && bok:
		if c := cmp.Compare(bs.Bytes(), as.Bytes()); c != 0 {
			return c
		}
	}
	return ByName(a, b)
}

// DirsFirst wraps next so that directories sort before everything else
func DirsFirst(next Compare) Compare {
	return func(a, b *Node) int {
		ad, bd := a.IsDir(), b.IsDir()
		switch {
		case ad && !bd:
			return -1
		case !ad && bd:
			return 1
		}
		return next(a, b)
	}
}
