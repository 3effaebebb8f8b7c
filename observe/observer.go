package observe

// Observer remembers the handles of its subscriptions so they can be
// reversed by registry. The zero value is ready to use.
type Observer[T any] struct {
	observed map[Registry[T]]Handle
}

// Subscribe registers fn on r, bound to the observer. Subscribing again to
// the same registry replaces the previous subscription.
func (o *Observer[T]) Subscribe(r Registry[T], fn func(T)) bool {
	if o.observed == nil {
		o.observed = make(map[Registry[T]]Handle)
	}
	if h, ok := o.observed[r]; ok {
		r.Remove(h)
		delete(o.observed, r)
	}

	h, ok := r.Register(o, fn)
	if !ok {
		return false
	}
	o.observed[r] = h
	return true
}

// Unsubscribe removes the subscription on r, if any.
func (o *Observer[T]) Unsubscribe(r Registry[T]) {
	h, ok := o.observed[r]
	if !ok {
		return
	}
	r.Remove(h)
	delete(o.observed, r)
}

// Subscribed reports whether the observer holds a subscription on r.
func (o *Observer[T]) Subscribed(r Registry[T]) bool {
	_, ok := o.observed[r]
	return ok
}
