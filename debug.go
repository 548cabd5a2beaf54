package atlasmap

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	drawTime  time.Duration
	nodeCount int
	mapDraws  int
}

// debugLog prints frame stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[atlasmap] draw: %v | nodes: %d | map draws: %d\n",
		stats.drawTime, stats.nodeCount, stats.mapDraws)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("atlasmap debug: %s on disposed node %q", op, n.Name))
	}
}

// debugWarnDisposedMap reports a Render call on a disposed map.
func debugWarnDisposedMap() {
	_, _ = fmt.Fprintln(os.Stderr, "[atlasmap] warning: Render on disposed map (nothing drawn)")
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[atlasmap] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
