package natrix

// maxRoots bounds the root stack — spec.md §4.6: a LIFO of at most 64
// entries, one per live "hold this object across an allocation" site
// in the evaluator.
const maxRoots = 64

// initialThreshold is the object count at which the first collection
// runs, and survivalNum/survivalDen the 7/8 fraction of the threshold
// a collection must retain before the threshold doubles — spec.md
// §4.6's "grow the threshold only when the heap is still mostly live
// after a sweep".
const initialThreshold = 100
const survivalNum, survivalDen = 7, 8

// GC owns the heap list, the root stack, and the allocation threshold.
// It does not itself reclaim host memory — Go's runtime does that once
// an object becomes unreachable — but it enforces and makes testable
// the same mark-sweep-threshold discipline spec.md §4.6 describes:
// objects swept here are unlinked from the heap list (and so become
// collectible by the host GC); objects that survive a sweep are the
// ones still reachable from a root.
type GC struct {
	head      *gcHeader
	count     int
	threshold int
	survNum   int
	survDen   int

	roots   []Value
	rootTop int

	env *Environment
}

// NewGC creates a GC with spec.md §4.6's default threshold, survival
// ratio, and root-stack capacity.
func NewGC() *GC {
	return NewGCTuned(NewTuningConfig())
}

// NewGCTuned creates a GC using cfg's threshold, survival ratio, and
// root-stack capacity instead of spec.md's defaults.
func NewGCTuned(cfg *TuningConfig) *GC {
	return &GC{
		threshold: cfg.GCInitialThresh,
		survNum:   cfg.GCSurvivalNum,
		survDen:   cfg.GCSurvivalDen,
		roots:     make([]Value, cfg.RootStackCap),
	}
}

// SetEnv tells the GC which environment chain to treat as an implicit,
// permanent root for mark — the evaluator's variable bindings, which
// live outside the root-stack discipline used for transient values
// held across a single allocation.
func (gc *GC) SetEnv(env *Environment) { gc.env = env }

// link adds obj to the heap list and bumps the live-object count,
// collecting first if the threshold has been reached. Every
// constructor in object.go that allocates a heap object (other than
// the small-int cache and the bool singletons, which are never linked)
// calls this.
func (gc *GC) link(obj *gcHeader) {
	if gc.count >= gc.threshold {
		gc.Collect()
	}
	obj.next = gc.head
	gc.head = obj
	gc.count++
	if gc.count > 1<<30 {
		panic(&RuntimeFault{Message: "too many objects"})
	}
}

// root pushes v onto the root stack, keeping it (and everything it
// transitively references) alive across any allocation performed while
// it is the caller's only handle to it — spec.md §4.6's "objects
// reachable only from the native call stack must be rooted before any
// allocation that could trigger a collection."
func (gc *GC) root(v Value) {
	if gc.rootTop >= len(gc.roots) {
		panic(&RuntimeFault{Message: "too many GC roots"})
	}
	gc.roots[gc.rootTop] = v
	gc.rootTop++
}

// unroot pops the top of the root stack. Callers must unroot in
// exactly the reverse order they rooted — the root stack is a LIFO,
// not a set, per spec.md §4.6.
func (gc *GC) unroot(v Value) {
	gc.rootTop--
	if gc.roots[gc.rootTop] != v {
		panic("gc: unroot does not match top of root stack")
	}
	gc.roots[gc.rootTop] = nil
}

// markValue marks v live and, the first time it's reached this
// collection, recurses into its children via its Type's trace slot —
// idempotent on the mark bit, so cyclic structures (a list containing
// itself) terminate. Bool singletons have a nil header and are never
// touched, matching spec.md §5's "never marked".
func (gc *GC) markValue(v Value) {
	if v == nil {
		return
	}
	h := v.header()
	if h == nil {
		return
	}
	if h.marked {
		return
	}
	h.marked = true
	v.Type().trace(v, gc)
}

// GCStats reports bulk counters about the collector's state, for the
// CLI's -verbose output — the optional feature spec.md §4.6 describes
// without wiring it to a surface.
type GCStats struct {
	LiveObjects int
	Threshold   int
}

func (gc *GC) Stats() GCStats {
	return GCStats{LiveObjects: gc.count, Threshold: gc.threshold}
}

// Collect runs one mark-sweep cycle: mark every object reachable from
// the root stack and the environment chain, sweep everything unmarked
// off the heap list, then grow the threshold if survival was high —
// spec.md §4.6's full collection algorithm.
func (gc *GC) Collect() {
	for i := 0; i < gc.rootTop; i++ {
		gc.markValue(gc.roots[i])
	}
	if gc.env != nil {
		gc.env.trace(gc)
	}

	var kept *gcHeader
	survivors := 0
	for h := gc.head; h != nil; {
		next := h.next
		if h.marked {
			h.marked = false
			h.next = kept
			kept = h
			survivors++
		}
		h = next
	}
	gc.head = kept
	gc.count = survivors

	if survivors*gc.survDen >= gc.threshold*gc.survNum {
		gc.threshold *= 2
		if gc.threshold <= 0 {
			panic(&RuntimeFault{Message: "too many objects"})
		}
	}
}
