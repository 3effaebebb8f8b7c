// Package observe implements a small publish/subscribe protocol used to
// decouple timelines from the animations that consume them.
package observe

import (
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
)

// Handle identifies a single registration on an Observable.
type Handle uint64

var nextHandle uint64

func newHandle() Handle {
	return Handle(atomic.AddUint64(&nextHandle, 1))
}

// A Registry accepts and removes bound callbacks.
type Registry[T any] interface {
	Register(receiver any, fn func(T)) (Handle, bool)
	Remove(h Handle)
}

type binding struct {
	receiver any
	code     uintptr
}

type entry[T any] struct {
	handle Handle
	key    *binding
	fn     func(T)
}

// bindingOf returns the identity of fn bound to receiver, or nil when it has
// none. Only method values have one: closures made from the same literal
// share their code but not their captured state, so they are never equal.
func bindingOf(receiver any, fn any) *binding {
	if receiver != nil && !reflect.TypeOf(receiver).Comparable() {
		return nil
	}
	code := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(code)
	if f == nil || !strings.HasSuffix(f.Name(), "-fm") {
		return nil
	}
	return &binding{receiver: receiver, code: code}
}

// Observable dispatches values to every registered callback.
// The zero value is ready to use. It is not safe for concurrent use.
type Observable[T any] struct {
	entries []entry[T]
}

// Register binds fn to receiver and adds it to the observers.
// Registering the same method value again for the same receiver is
// rejected and false is returned. Function literals are always added, and
// so is anything bound to a receiver that isn't comparable.
func (o *Observable[T]) Register(receiver any, fn func(T)) (Handle, bool) {
	if fn == nil {
		return 0, false
	}
	key := bindingOf(receiver, fn)
	if key != nil {
		for _, e := range o.entries {
			if e.key != nil && *e.key == *key {
				return 0, false
			}
		}
	}
	h := newHandle()
	o.entries = append(o.entries, entry[T]{handle: h, key: key, fn: fn})
	return h, true
}

// Remove deletes the registration for h. Unknown handles are ignored.
func (o *Observable[T]) Remove(h Handle) {
	for i, e := range o.entries {
		if e.handle == h {
			o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
			return
		}
	}
}

// Dispatch calls every registered callback with v, in registration order.
// Callbacks registered or removed during a dispatch take effect on the
// next one.
func (o *Observable[T]) Dispatch(v T) {
	snapshot := o.entries
	for _, e := range snapshot {
		e.fn(v)
	}
}

// Len returns the number of registered callbacks.
func (o *Observable[T]) Len() int {
	return len(o.entries)
}
