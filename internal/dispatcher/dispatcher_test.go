package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingAction struct{}
type pongAction struct{}

// recordingProcessor claims one action type and records what it handled.
type recordingProcessor struct {
	claims  func(Action) bool
	handled []Action
}

func (p *recordingProcessor) SupportsAction(a Action) bool {
	return p.claims(a)
}

func (p *recordingProcessor) OnAction(a Action) {
	p.handled = append(p.handled, a)
}

func TestDispatchRoutesToClaimingProcessor(t *testing.T) {
	d := New()
	ping := &recordingProcessor{claims: func(a Action) bool { _, ok := a.(pingAction); return ok }}
	pong := &recordingProcessor{claims: func(a Action) bool { _, ok := a.(pongAction); return ok }}
	d.Register(ping)
	d.Register(pong)

	d.Dispatch(pingAction{})
	d.Dispatch(pongAction{})
	d.Dispatch(pingAction{})

	assert.Len(t, ping.handled, 2)
	assert.Len(t, pong.handled, 1)
}

func TestDispatchRoutesToExactlyOneProcessor(t *testing.T) {
	d := New()
	first := &recordingProcessor{claims: func(Action) bool { return true }}
	second := &recordingProcessor{claims: func(Action) bool { return true }}
	d.Register(first)
	d.Register(second)

	d.Dispatch(pingAction{})

	assert.Len(t, first.handled, 1)
	assert.Empty(t, second.handled)
}

// chainingProcessor dispatches a follow-up action from inside its own
// handler, the way an action's completion callback would.
type chainingProcessor struct {
	dispatcher *Dispatcher
	followUp   Action
	handled    []Action
}

func (p *chainingProcessor) SupportsAction(a Action) bool { return true }

func (p *chainingProcessor) OnAction(a Action) {
	p.handled = append(p.handled, a)
	if _, chained := a.(pongAction); !chained {
		p.dispatcher.Dispatch(p.followUp)
	}
}

func TestDispatchFromWithinHandlerDoesNotDeadlock(t *testing.T) {
	d := New()
	p := &chainingProcessor{dispatcher: d, followUp: pongAction{}}
	d.Register(p)

	d.Dispatch(pingAction{})

	assert.Equal(t, []Action{pingAction{}, pongAction{}}, p.handled)
}

func TestDispatchPanicsOnUnclaimedAction(t *testing.T) {
	d := New()
	d.Register(&recordingProcessor{claims: func(Action) bool { return false }})

	assert.Panics(t, func() {
		d.Dispatch(pingAction{})
	})
}
