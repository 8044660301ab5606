package carousel

import (
	"fmt"
	"os"
	"time"
)

// debugLog prints per-frame draw stats to stderr.
func (s *Scene) debugLog(stats drawStats, elapsed time.Duration) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[carousel] draw: %v | draw calls: %d | offscreen passes: %d | culled: %d | pooled: %d\n",
		elapsed, stats.drawCalls, stats.offscreens, stats.culled, s.rtPool.pooled())
}

// debugCheckDisposed panics when a disposed node is used in a tree operation.
// Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("carousel debug: %s on disposed node %q", op, n.Name))
	}
}

const debugMaxTreeDepth = 16

// debugCheckTreeDepth warns on stderr when a node sits deeper than any
// gallery layout needs.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[carousel] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

const debugMaxChildCount = 256

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[carousel] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
