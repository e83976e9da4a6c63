//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"booking-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// DisplaySink is one display client's delivery endpoint. Consume must
// not block the broadcaster: implementations buffer internally and
// return an error when the client cannot keep up, which drops the
// connection from the registry (the client reconnects and resyncs).
// The broadcaster calls Close on a dropped sink so the transport
// goroutine behind it unblocks and tears its connection down.
type DisplaySink interface {
	Consume(ctx context.Context, snapshot domain.Snapshot) error
	Close()
}

// IRegistry tracks connected display clients. Connections are
// independent: a failed sink is removed without touching the others.
type IRegistry interface {
	Subscribe(connID string, sink DisplaySink)
	Unsubscribe(connID string)
	Sinks() map[string]DisplaySink
}

// StateProvider recomputes the live room view from the store.
type StateProvider interface {
	CurrentState(ctx context.Context, asOf time.Time) (domain.RoomState, error)
}
