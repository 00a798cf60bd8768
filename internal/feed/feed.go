package feed

import (
	"sync"

	"github.com/sirupsen/logrus"

	"rail_tracker/internal/models"
)

// subscriberBuffer bounds how many undelivered events a slow subscriber may
// hold before further events are dropped for it.
const subscriberBuffer = 16

// TrainUpdate carries the previous and new state of one train row, in the
// shape the underlying change feed delivers them.
type TrainUpdate struct {
	Old models.Train `json:"old"`
	New models.Train `json:"new"`
}

// Feed is an in-process pub/sub channel of train row updates. The simulator
// publishes into it; each websocket connection subscribes. Delivery to one
// subscriber follows publish order; there is no ordering across subscribers
// and no redelivery of events missed while unsubscribed.
type Feed struct {
	mu   sync.Mutex
	subs map[chan TrainUpdate]struct{}
}

func New() *Feed {
	return &Feed{subs: make(map[chan TrainUpdate]struct{})}
}

// Subscribe registers a new subscriber and returns its event channel together
// with an unsubscribe func. Unsubscribing closes the channel and is safe to
// call more than once.
func (f *Feed) Subscribe() (<-chan TrainUpdate, func()) {
	ch := make(chan TrainUpdate, subscriberBuffer)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	unsubscribe := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.subs[ch]; !ok {
			return
		}
		delete(f.subs, ch)
		close(ch)
	}
	return ch, unsubscribe
}

// Publish fans an update out to every subscriber. Sends never block: a
// subscriber whose buffer is full loses the event.
func (f *Feed) Publish(ev TrainUpdate) {
	var dropped int

	f.mu.Lock()
	for ch := range f.subs {
		select {
		case ch <- ev:
		default:
			dropped++
		}
	}
	f.mu.Unlock()

	if dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"train_id":     ev.New.ID,
			"train_number": ev.New.TrainNumber,
			"dropped":      dropped,
		}).Warn("Subscriber buffers full, dropping train update.")
	}
}

// SubscriberCount reports how many subscribers are currently attached.
func (f *Feed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
