package dropbox

import "context"

// Pending is a call started with Call.
type Pending[T any] struct {
	endpoint string
	cancel   context.CancelFunc
	done     chan struct{}

	// Written once, before done is closed.
	result *T
	err    error
}

func newPending[T any](endpoint string, cancel context.CancelFunc) *Pending[T] {
	return &Pending[T]{
		endpoint: endpoint,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

func (p *Pending[T]) resolve(result *T, err error) {
	p.result = result
	p.err = err
	close(p.done)
}

// Done returns a channel that is closed when the call completes.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the call completes and returns its outcome.
func (p *Pending[T]) Wait() (*T, error) {
	<-p.done
	return p.result, p.err
}

// Await waits for the call like Wait, but gives up when ctx ends. Giving up
// cancels the call and returns a KindRequest error wrapping ctx.Err().
func (p *Pending[T]) Await(ctx context.Context) (*T, error) {
	select {
	case <-p.done:
		return p.result, p.err
	default:
	}

	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		p.cancel()
		return nil, newError(KindRequest, p.endpoint, "call abandoned", ctx.Err())
	}
}

// Cancel aborts the call without waiting for it. A request already on the
// wire may still be processed by the server. Cancel after completion has no
// effect.
func (p *Pending[T]) Cancel() {
	p.cancel()
}
