package storage

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Store names shared between publisher and subscribers. GlobalDeploy is a
// reserved topic, not a collection: it announces a publish-to-production.
const (
	StoreTours    = "tours"
	StoreUsers    = "users"
	StoreConfigs  = "configs"
	StoreAdmins   = "admins"
	StoreReviews  = "reviews"
	StoreBookings = "bookings"
	GlobalDeploy  = "GLOBAL_DEPLOY"

	syncChannel = "cr_app_sync"
)

var Redis *redis.Client

func InitializeRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		log.Println("REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "",
		DB:       0,
	})
}

// ChangeEvent is the wire shape of a change signal: which collection changed.
// Receivers decide for themselves what to re-read.
type ChangeEvent struct {
	Type  string `json:"type"`
	Store string `json:"store"`
}

// processID tags outgoing publications so the bridge can tell this process's
// own messages apart; a sender never hears its own broadcast.
var processID = uuid.NewString()

type wireEvent struct {
	ChangeEvent
	Origin string `json:"origin,omitempty"`
}

var (
	subscribersMu sync.Mutex
	subscribers   = map[chan ChangeEvent]struct{}{}
)

// Subscribe registers an in-process listener for change events. The channel
// is buffered; events are dropped rather than blocking a publisher.
func Subscribe() chan ChangeEvent {
	ch := make(chan ChangeEvent, 16)
	subscribersMu.Lock()
	subscribers[ch] = struct{}{}
	subscribersMu.Unlock()
	return ch
}

func Unsubscribe(ch chan ChangeEvent) {
	subscribersMu.Lock()
	delete(subscribers, ch)
	subscribersMu.Unlock()
}

func fanOut(event ChangeEvent) {
	subscribersMu.Lock()
	for ch := range subscribers {
		select {
		case ch <- event:
		default:
		}
	}
	subscribersMu.Unlock()
}

// Notify broadcasts that a store changed. Fire-and-forget: there is no
// acknowledgment and a process that is not subscribed misses the event.
// Local subscribers get the event once, directly; the Redis publication is
// origin-tagged so the bridge never redelivers it here.
func Notify(store string) {
	event := ChangeEvent{Type: "UPDATE", Store: store}
	fanOut(event)

	if Redis == nil {
		return
	}
	payload, err := json.Marshal(wireEvent{ChangeEvent: event, Origin: processID})
	if err != nil {
		return
	}
	if err := Redis.Publish(context.Background(), syncChannel, payload).Err(); err != nil {
		log.Println("change broadcast failed:", err)
	}
}

// dispatchRemote fans out a published payload unless this process sent it;
// local subscribers already received self-originated events from Notify.
func dispatchRemote(payload []byte) {
	var event wireEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return
	}
	if event.Origin == processID {
		return
	}
	fanOut(event.ChangeEvent)
}

// ListenRedis bridges remote publications into the local subscriber fan-out
// so every process serving the site sees every change signal. It blocks until
// the context is cancelled.
func ListenRedis(ctx context.Context) {
	if Redis == nil {
		return
	}
	sub := Redis.Subscribe(ctx, syncChannel)
	defer sub.Close()
	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			return
		}
		dispatchRemote([]byte(msg.Payload))
	}
}
