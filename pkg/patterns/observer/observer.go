package observer

import (
	"sync"
)

type (
	//EventReceiver receives events of type E
	EventReceiver[E any] func(event E)

	//Observer receives events it is subscribed to until closed
	Observer[E any] interface {
		Close() error
		observe(...E)
		canRunAsync() bool
	}

	//Subject source of events
	Subject[E any] interface {
		ObserversAttach(...Observer[E])
		ObserversDetach(...Observer[E])
		DetachAllObservers()
		Notify(...E)
		Len() int
	}
)

//NewSubject makes subject which broadcasts events to attached observers
func NewSubject[E any]() Subject[E] {
	return &subjectImpl[E]{
		observerHolder: make(map[Observer[E]]struct{}),
	}
}

//NewObserver makes events observer, async observers receive events on their own goroutine
func NewObserver[E any](er EventReceiver[E], async bool) Observer[E] {
	return &observerImpl[E]{
		EventReceiver: er,
		async:         async,
	}
}

// ------------------------------I M P L--------------------------------

type (
	subjectImpl[E any] struct {
		sync.RWMutex
		observerHolder map[Observer[E]]struct{}
	}
	observerImpl[E any] struct {
		sync.RWMutex
		EventReceiver[E]
		closed bool
		async  bool
	}
)

func (s *subjectImpl[E]) ObserversAttach(observers ...Observer[E]) {
	s.Lock()
	defer s.Unlock()
	for _, o := range observers {
		if o != nil {
			s.observerHolder[o] = struct{}{}
		}
	}
}

func (s *subjectImpl[E]) ObserversDetach(observers ...Observer[E]) {
	s.Lock()
	defer s.Unlock()
	for _, o := range observers {
		delete(s.observerHolder, o)
	}
}

func (s *subjectImpl[E]) DetachAllObservers() {
	s.Lock()
	defer s.Unlock()
	s.observerHolder = make(map[Observer[E]]struct{})
}

func (s *subjectImpl[E]) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.observerHolder)
}

func (s *subjectImpl[E]) Notify(events ...E) {
	if len(events) == 0 {
		return
	}
	s.RLock()
	inline := make([]Observer[E], 0, len(s.observerHolder))
	async := make([]Observer[E], 0, len(s.observerHolder))
	for o := range s.observerHolder {
		if o.canRunAsync() {
			async = append(async, o)
		} else {
			inline = append(inline, o)
		}
	}
	s.RUnlock()
	for i := range async {
		go async[i].observe(events...)
	}
	for i := range inline {
		inline[i].observe(events...)
	}
}

func (o *observerImpl[E]) Close() error {
	o.Lock()
	defer o.Unlock()
	o.closed = true
	return nil
}

func (o *observerImpl[E]) observe(events ...E) {
	o.RLock()
	closed := o.closed
	o.RUnlock()
	if closed || o.EventReceiver == nil {
		return
	}
	for i := range events {
		o.EventReceiver(events[i])
	}
}

func (o *observerImpl[E]) canRunAsync() bool {
	return o.async
}
