// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"fmt"
	"io"
)

// Progress observes pipeline stages. It carries no correctness
// obligations; the engine works identically with a no-op.
type Progress interface {
	// Step marks the start of a named pipeline stage.
	Step(name string)

	// Item marks one unit of work done within the current stage.
	Item()
}

// NopProgress discards all updates.
type NopProgress struct{}

func (NopProgress) Step(string) {}
func (NopProgress) Item()       {}

// WriterProgress prints stage transitions and per-item ticks to a
// writer, one stage per line.
type WriterProgress struct {
	W io.Writer

	ticking bool
}

func (p *WriterProgress) Step(name string) {
	if p.ticking {
		fmt.Fprintln(p.W)
		p.ticking = false
	}
	fmt.Fprintf(p.W, "%s...\n", name)
}

func (p *WriterProgress) Item() {
	fmt.Fprint(p.W, ".")
	p.ticking = true
}
