// Package dispatcher is the action bus the rest of the application talks
// to the settings engine through. Processors claim closed sets of action
// types; Dispatch routes each action to exactly one processor,
// synchronously and one at a time.
package dispatcher

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Action is a tagged request describing one operation, its parameters and
// its completion receiver. Concrete action types are defined by the
// processor that handles them.
type Action any

// Processor handles a closed set of action types.
type Processor interface {
	// SupportsAction reports whether this processor claims the action.
	SupportsAction(action Action) bool

	// OnAction executes the action, invoking its completion before
	// returning. Passing an action the processor does not support is a
	// programmer error.
	OnAction(action Action)
}

// Dispatcher routes actions to registered processors. Routing runs on
// the caller's goroutine, so actions dispatched from a single goroutine
// complete in order. A completion may dispatch follow-up actions.
type Dispatcher struct {
	mu         sync.Mutex
	processors []Processor
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a processor. Registration order decides claim order when
// processors overlap, which well-behaved processors never do.
func (d *Dispatcher) Register(p Processor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.processors = append(d.processors, p)
}

// Dispatch routes the action to the processor that claims it. An action
// no processor claims signals a wiring defect between producer and store,
// and fails loudly rather than being dropped. The lock only guards the
// processor list; OnAction runs outside it so a completion can dispatch
// follow-up actions without deadlocking.
func (d *Dispatcher) Dispatch(action Action) {
	d.mu.Lock()
	processors := make([]Processor, len(d.processors))
	copy(processors, d.processors)
	d.mu.Unlock()

	for _, p := range processors {
		if p.SupportsAction(action) {
			p.OnAction(action)
			return
		}
	}
	logrus.Panicf("dispatcher: no processor registered for action %T", action)
}
