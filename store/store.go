// Package store holds the single order State of a front-of-house terminal and
// serialises every change to it through the reducer.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"restaurant-foh/models"
	"restaurant-foh/statemachine"
)

// Archiver receives copies of orders that entered or changed in history.
type Archiver interface {
	Archive(ctx context.Context, order models.Order) error
}

type Option func(*Store)

func WithArchiver(a Archiver) Option {
	return func(s *Store) { s.archive = a }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Listener is called with a snapshot after every dispatch. Listeners run
// under the dispatch lock and must not call back into the Store.
type Listener func(statemachine.State)

type Store struct {
	mu        sync.Mutex
	reducer   statemachine.Reducer
	state     statemachine.State
	listeners map[uint64]Listener
	nextID    uint64
	archive   Archiver
	log       zerolog.Logger
}

func New(r statemachine.Reducer, initial statemachine.State, opts ...Option) *Store {
	s := &Store{
		reducer:   r,
		state:     initial.Clone(),
		listeners: make(map[uint64]Listener),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy is the confirmation and removal policy the reducer applies.
func (s *Store) Policy() statemachine.Policy {
	return s.reducer.Policy
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() statemachine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies cmd and returns a snapshot of the resulting state.
func (s *Store) Dispatch(cmd statemachine.Command) statemachine.State {
	s.mu.Lock()
	prev := s.state
	next := s.reducer.Reduce(prev, cmd)
	s.state = next
	s.notify()
	changed := changedOrders(prev.Orders, next.Orders)
	snap := next.Clone()
	s.mu.Unlock()

	s.log.Debug().Str("command", commandName(cmd)).Int("changed_orders", len(changed)).Msg("dispatched")
	s.archiveAll(changed)
	return snap
}

// PlaceOrder confirms the draft. Validation errors are returned for the
// caller to show the user; the state is left untouched in that case.
func (s *Store) PlaceOrder() (models.Order, error) {
	s.mu.Lock()
	if err := statemachine.ValidateConfirm(s.state, s.reducer.Policy); err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}
	prev := s.state
	s.state = s.reducer.Reduce(prev, statemachine.ConfirmOrder{})
	s.notify()
	placed := s.state.Orders[len(s.state.Orders)-1].Clone()
	s.mu.Unlock()

	s.log.Info().Str("order_id", placed.ID).Str("table", placed.Table).Str("total", placed.Total.StringFixed(2)).Msg("order placed")
	s.archiveAll([]models.Order{placed})
	return placed, nil
}

var ErrOrderNotFound = errors.New("order not found")

// UpdateStatus moves order id to status and returns the status it had. With
// strict set, actor must be allowed to make the step by the forward lifecycle;
// the check and the change happen under one lock.
func (s *Store) UpdateStatus(id string, status models.OrderStatus, actor models.UserRole, strict bool) (models.OrderStatus, error) {
	s.mu.Lock()
	order, ok := s.state.Order(id)
	if !ok {
		s.mu.Unlock()
		return "", ErrOrderNotFound
	}
	prev := order.Status
	if strict {
		if err := statemachine.CanTransition(prev, status, actor); err != nil {
			s.mu.Unlock()
			return prev, err
		}
	}
	before := s.state
	s.state = s.reducer.Reduce(before, statemachine.UpdateOrderStatus{OrderID: id, Status: status})
	s.notify()
	changed := changedOrders(before.Orders, s.state.Orders)
	s.mu.Unlock()

	s.log.Info().Str("order_id", id).Str("from", string(prev)).Str("to", string(status)).Msg("order status updated")
	s.archiveAll(changed)
	return prev, nil
}

// Subscribe registers fn until the returned function is called. Calling the
// returned function more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// NewOrders streams orders as they are appended to history. The channel is
// closed once ctx is done; orders are dropped if the reader falls behind.
func (s *Store) NewOrders(ctx context.Context, buffer int) <-chan models.Order {
	ch := make(chan models.Order, buffer)

	s.mu.Lock()
	seen := len(s.state.Orders)
	s.mu.Unlock()

	unsubscribe := s.Subscribe(func(st statemachine.State) {
		for ; seen < len(st.Orders); seen++ {
			select {
			case ch <- st.Orders[seen].Clone():
			default:
				s.log.Warn().Str("order_id", st.Orders[seen].ID).Msg("new order feed full, dropping")
			}
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		close(ch)
	}()
	return ch
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.state.Clone()
	for _, fn := range s.listeners {
		fn(snap)
	}
}

func (s *Store) archiveAll(orders []models.Order) {
	if s.archive == nil {
		return
	}
	for _, o := range orders {
		if err := s.archive.Archive(context.Background(), o); err != nil {
			s.log.Error().Err(err).Str("order_id", o.ID).Msg("archive order")
		}
	}
}

// changedOrders returns orders in next that are new or whose status moved.
func changedOrders(prev, next []models.Order) []models.Order {
	if len(prev) == len(next) && (len(next) == 0 || &prev[0] == &next[0]) {
		return nil
	}
	before := make(map[string]models.OrderStatus, len(prev))
	for _, o := range prev {
		before[o.ID] = o.Status
	}
	var out []models.Order
	for _, o := range next {
		if status, ok := before[o.ID]; !ok || status != o.Status {
			out = append(out, o.Clone())
		}
	}
	return out
}
