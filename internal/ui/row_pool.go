package ui

import "fmt"

// RowFactory creates a fresh row when the pool has none to recycle.
type RowFactory func() *RowView

// RowPool recycles RowViews per reuse identifier, so only the visible rows of a
// list are ever allocated.
type RowPool struct {
	factories map[string]RowFactory
	free      map[string][]*RowView
	created   int
}

func NewRowPool() *RowPool {
	return &RowPool{
		factories: make(map[string]RowFactory),
		free:      make(map[string][]*RowView),
	}
}

func (p *RowPool) Register(identifier string, factory RowFactory) {
	p.factories[identifier] = factory
}

// Dequeue returns a reset row for identifier. Asking for an identifier nobody
// registered is a programming error and panics.
func (p *RowPool) Dequeue(identifier string) *RowView {
	factory, ok := p.factories[identifier]
	if !ok {
		panic(fmt.Sprintf("ui: no row factory registered for %q", identifier))
	}

	if free := p.free[identifier]; len(free) > 0 {
		row := free[len(free)-1]
		p.free[identifier] = free[:len(free)-1]
		row.Reset()
		return row
	}

	p.created++
	return factory()
}

// Enqueue hands row back to the pool.
func (p *RowPool) Enqueue(identifier string, row *RowView) {
	row.Reset()
	p.free[identifier] = append(p.free[identifier], row)
}

// Created returns how many rows the factories had to build so far.
func (p *RowPool) Created() int {
	return p.created
}

// Free returns how many rows are waiting to be reused for identifier.
func (p *RowPool) Free(identifier string) int {
	return len(p.free[identifier])
}
