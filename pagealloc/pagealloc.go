// Package pagealloc is the external page allocator collaborator described
// at spec.md §6: a fixed pool of fixed-size pages, handed out zeroed and
// returned whole. The thread subsystem takes one page per thread; this
// package only owns the pages themselves, never their contents.
package pagealloc

import "sync"

// PageSize matches the x86-64 page size the original kernel targets.
const PageSize = 4096

// Page is an opaque handle to one allocated page.
type Page struct {
	id   int
	data [PageSize]byte
}

// Bytes exposes the page's backing storage, for callers (like core) that
// want to place a record at a fixed offset the way a TCB sits at the base
// of its stack page.
func (p *Page) Bytes() []byte { return p.data[:] }

// Pool is a fixed-capacity page allocator.
type Pool struct {
	mu       sync.Mutex
	cap      int
	free     []*Page
	nextID   int
	inUse    map[int]*Page
}

// NewPool creates a pool that can hand out up to capacity pages
// concurrently. capacity <= 0 means unbounded.
func NewPool(capacity int) *Pool {
	return &Pool{cap: capacity, inUse: make(map[int]*Page)}
}

// Alloc returns a fresh page, zeroed when zeroed is true, or ok=false if
// the pool is exhausted — the collaborator contract thread_create relies
// on to report TID_ERROR without leaving partial state behind.
func (p *Pool) Alloc(zeroed bool) (pg *Page, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		pg = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		if p.cap > 0 && len(p.inUse)+1 > p.cap {
			return nil, false
		}
		pg = &Page{id: p.nextID}
		p.nextID++
	}
	if zeroed {
		for i := range pg.data {
			pg.data[i] = 0
		}
	}
	p.inUse[pg.id] = pg
	return pg, true
}

// Free returns a page to the pool for reuse. Freeing a page that is not
// currently allocated is a contract violation.
func (p *Pool) Free(pg *Page) {
	if pg == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.inUse[pg.id]; !ok {
		panic("pagealloc: double free or foreign page")
	}
	delete(p.inUse, pg.id)
	p.free = append(p.free, pg)
}

// InUse reports the number of pages currently allocated, for tests.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inUse)
}
