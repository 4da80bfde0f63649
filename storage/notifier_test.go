package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/HenryDP/UnaAventuraMasCR/models"
)

func collectEvent(t *testing.T, ch chan ChangeEvent) ChangeEvent {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a change event")
		return ChangeEvent{}
	}
}

func drainEvents(ch chan ChangeEvent) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func TestNotifyReachesSubscriber(t *testing.T) {
	ch := Subscribe()
	defer Unsubscribe(ch)

	Notify(StoreTours)
	event := collectEvent(t, ch)
	if event.Type != "UPDATE" || event.Store != StoreTours {
		t.Fatalf("unexpected event %+v", event)
	}

	// Exactly one message per notification.
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra event %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

// Every mutating operation signals its collection; the old asymmetry where
// only some writes notified was a bug, not a contract.
func TestEveryMutationNotifies(t *testing.T) {
	newTestDB(t)
	ch := Subscribe()
	defer Unsubscribe(ch)

	cases := []struct {
		store string
		op    func()
	}{
		{StoreTours, func() { SaveAllTours([]models.Tour{{ID: "a", Title: "A"}}) }},
		{StoreUsers, func() { CreateUser(models.User{Email: "a@x.com"}) }},
		{StoreAdmins, func() { SaveAllAdmins([]models.AdminUser{{ID: "e1", Name: "Eva"}}) }},
		{StoreReviews, func() { AddReview(models.Review{ID: "r1", Rating: 5}) }},
		{StoreReviews, func() { SaveAllReviews([]models.Review{{ID: "r2", Rating: 4}}) }},
		{StoreBookings, func() { AddBooking(models.Booking{ID: "b1", TourID: "a"}) }},
		{StoreConfigs, func() { SetConfig(ConfigGeneral, models.GeneralConfig{BrandName: "X"}) }},
	}

	for _, tc := range cases {
		drainEvents(ch)
		tc.op()
		event := collectEvent(t, ch)
		if event.Store != tc.store {
			t.Fatalf("expected notification for %q, got %+v", tc.store, event)
		}
	}
}

// A notification that comes back over the pub/sub bridge must not reach the
// subscribers a second time; only foreign-origin publications are delivered.
func TestBridgeSkipsSelfOriginatedEvents(t *testing.T) {
	ch := Subscribe()
	defer Unsubscribe(ch)

	own, err := json.Marshal(wireEvent{
		ChangeEvent: ChangeEvent{Type: "UPDATE", Store: StoreTours},
		Origin:      processID,
	})
	if err != nil {
		t.Fatalf("encoding payload: %v", err)
	}
	dispatchRemote(own)
	select {
	case event := <-ch:
		t.Fatalf("self-originated publication redelivered %+v", event)
	case <-time.After(50 * time.Millisecond):
	}

	foreign, err := json.Marshal(wireEvent{
		ChangeEvent: ChangeEvent{Type: "UPDATE", Store: StoreReviews},
		Origin:      "some-other-process",
	})
	if err != nil {
		t.Fatalf("encoding payload: %v", err)
	}
	dispatchRemote(foreign)
	event := collectEvent(t, ch)
	if event.Type != "UPDATE" || event.Store != StoreReviews {
		t.Fatalf("expected the foreign publication, got %+v", event)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ch := Subscribe()
	Unsubscribe(ch)

	Notify(StoreConfigs)
	select {
	case event := <-ch:
		t.Fatalf("unsubscribed channel received %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDeployBroadcastsGlobalSignal(t *testing.T) {
	newTestDB(t)
	ch := Subscribe()
	defer Unsubscribe(ch)

	stamp := Deploy()
	if stamp == "" {
		t.Fatal("deploy must always produce a timestamp")
	}
	event := collectEvent(t, ch)
	if event.Store != GlobalDeploy {
		t.Fatalf("expected %s signal, got %+v", GlobalDeploy, event)
	}
}
