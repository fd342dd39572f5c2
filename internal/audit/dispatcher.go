package audit

import (
	"context"
	"log"
)

type Event struct {
	TrainerID string
	Action    string
	Entity    string
	EntityID  string
	Metadata  any
}

type Dispatcher struct {
	store Store
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(store Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.store.Log(context.Background(), ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}

// Close drains the queue. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
