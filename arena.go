package natrix

import (
	"reflect"
	"unsafe"
)

// defaultChunkSize is the payload size of a regularly-sized chunk, in
// bytes. Oversized allocations (larger than this) get their own
// dedicated chunk instead of sharing one.
const defaultChunkSize = 8192

const arenaAlignment = 16

// chunk is one link in the arena's chunk list. payload is its storage;
// ptr is the bump offset into it, 0 <= ptr <= len(payload).
type chunk struct {
	payload []byte
	ptr     int
	next    *chunk
}

func newChunk(size int) *chunk {
	return &chunk{payload: make([]byte, size)}
}

func (c *chunk) remaining() int {
	return len(c.payload) - c.ptr
}

// Arena is a bump-pointer allocator backed by a chunk list. Every
// allocation it serves shares the arena's lifetime; there is no way to
// free an individual allocation. Release drops the whole chunk list
// at once, mirroring the single `free(arena)` call of spec.md §4.1 —
// in a garbage-collected host this just lets the chunks become
// unreachable, rather than returning memory to a system allocator.
type Arena struct {
	head      *chunk // chunk currently being bumped
	all       *chunk // head of the full chunk list, for Release/Stats
	count     int    // number of chunks
	allocs    int    // number of Alloc/allocNode calls served
	reqSize   int    // sum of requested (pre-rounding) sizes
	chunkSize int    // size of a regular chunk; oversized allocs exceed this

	// nodePools backs allocNode: one *typedPool[T] per concrete AST node
	// type, keyed by its reflect.Type. AST nodes hold ordinary Go
	// pointers and slice headers (Expr/Stmt fields, Body/Elems slices),
	// so they cannot live in the raw []byte chunks above — a byte slice
	// is noscan to Go's allocator, and reinterpreting it as a pointer-
	// bearing struct via unsafe.Pointer would leave those pointers
	// invisible to the host GC, which could then collect an object
	// still reachable only through one. Each typedPool[T] is instead a
	// plain []T slice, which the host GC scans precisely like any other
	// Go value.
	nodePools map[reflect.Type]any
}

// NewArena creates an arena with a single default-sized chunk ready
// to serve allocations.
func NewArena() *Arena {
	return NewArenaSized(defaultChunkSize)
}

// NewArenaSized creates an arena whose regular chunks are chunkSize
// bytes, overriding spec.md §4.1's default — the knob TuningConfig's
// ArenaChunkSize exposes.
func NewArenaSized(chunkSize int) *Arena {
	c := newChunk(chunkSize)
	return &Arena{head: c, all: c, count: 1, chunkSize: chunkSize, nodePools: make(map[reflect.Type]any)}
}

// Stats reports bulk statistics about the arena's lifetime, per the
// optional feature described in spec.md §4.1.
type ArenaStats struct {
	ChunkCount   int
	PayloadBytes int
	AllocCount   int
	RequestBytes int
}

func (a *Arena) Stats() ArenaStats {
	bytes := 0
	for c := a.all; c != nil; c = c.next {
		bytes += c.ptr
	}
	return ArenaStats{
		ChunkCount:   a.count,
		PayloadBytes: bytes,
		AllocCount:   a.allocs,
		RequestBytes: a.reqSize,
	}
}

func roundUp16(n int) int {
	return (n + arenaAlignment - 1) &^ (arenaAlignment - 1)
}

// Alloc returns n bytes aligned to 16. It never returns nil; Go's
// runtime allocator failing is treated as fatal (out of memory),
// unlike spec.md's C host which can return null.
func (a *Arena) Alloc(n int) []byte {
	a.allocs++
	a.reqSize += n

	size := roundUp16(n)

	if size > a.chunkSize {
		// Oversized fast path: a dedicated chunk, spliced to the
		// front of the list so it can never satisfy a later small
		// allocation. ptr is set to end so PayloadBytes accounting
		// (ptr-start per chunk) includes it in full.
		c := newChunk(size)
		c.ptr = size
		c.next = a.all
		a.all = c
		a.count++
		return c.payload[:n]
	}

	if a.head.remaining() < size {
		c := newChunk(a.chunkSize)
		a.head.next = c
		a.head = c
		a.count++
	}

	start := a.head.ptr
	a.head.ptr += size
	return a.head.payload[start : start+n : start+size]
}

// Release drops the arena's chunk list. Nodes allocated from this
// arena must not be touched afterwards.
func (a *Arena) Release() {
	a.head = nil
	a.all = nil
	a.nodePools = nil
}

// typedPool is allocNode's backing store for one concrete node type T:
// a bump index into a growable []T slice, so a run of same-type nodes
// is still served from batched, GC-friendly memory rather than one
// allocation per node.
type typedPool[T any] struct {
	chunk []T
	ptr   int
}

func (p *typedPool[T]) alloc(chunkLen int) *T {
	if p.ptr == len(p.chunk) {
		p.chunk = make([]T, chunkLen)
		p.ptr = 0
	}
	n := &p.chunk[p.ptr]
	p.ptr++
	return n
}

// allocNode returns a fresh zero-valued *T from a's type-T node pool,
// growing it in chunkSize/sizeof(T)-sized batches. Unlike Arena.Alloc's
// raw byte chunks, a typedPool[T]'s backing array is a genuine []T —
// the host GC tracks every pointer T contains, so an AST node reachable
// only through another arena-owned node (e.g. a ListLit's Elems, a
// WhileStmt's Body) stays correctly rooted.
func allocNode[T any](a *Arena) *T {
	var zero T
	rt := reflect.TypeOf(zero)
	p, ok := a.nodePools[rt]
	if !ok {
		p = &typedPool[T]{}
		a.nodePools[rt] = p
	}
	pool := p.(*typedPool[T])

	size := int(unsafe.Sizeof(zero))
	chunkLen := a.chunkSize / size
	if chunkLen < 1 {
		chunkLen = 1
	}
	n := pool.alloc(chunkLen)

	a.allocs++
	a.reqSize += size
	return n
}
