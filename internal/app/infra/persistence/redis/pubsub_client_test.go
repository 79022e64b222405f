package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestClient(t *testing.T) (*PubSubClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewPubSubClient(mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("NewPubSubClient failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestNewPubSubClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewPubSubClient(addr, "", 0); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestPublishSubscribe(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	received := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		msg, err := client.Subscribe(ctx, "account_events", 5*time.Second)
		if err != nil {
			errs <- err
			return
		}
		received <- msg
	}()

	// 等待订阅生效
	deadline := time.Now().Add(2 * time.Second)
	for mr.PubSubNumSub("account_events")["account_events"] == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	event := map[string]any{"type": "account.created", "account_id": 1}
	if err := client.Publish(ctx, "account_events", event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case msg := <-received:
		var got map[string]any
		if err := json.Unmarshal([]byte(msg), &got); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		if got["type"] != "account.created" || got["account_id"] != float64(1) {
			t.Fatalf("unexpected payload %v", got)
		}
	case err := <-errs:
		t.Fatalf("Subscribe failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestSubscribeTimeout(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Subscribe(context.Background(), "quiet", 50*time.Millisecond)
	if err != context.DeadlineExceeded {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestPublishMarshalError(t *testing.T) {
	client, _ := newTestClient(t)

	if err := client.Publish(context.Background(), "account_events", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestListen(t *testing.T) {
	client, mr := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 2)
	done := make(chan error, 1)
	go func() {
		done <- client.Listen(ctx, "account_events", func(_ context.Context, payload string) {
			payloads <- payload
		})
	}()

	deadline := time.Now().Add(2 * time.Second)
	for mr.PubSubNumSub("account_events")["account_events"] == 0 {
		if time.Now().After(deadline) {
			t.Fatal("listener never subscribed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	for _, id := range []int{1, 2} {
		if err := client.Publish(ctx, "account_events", map[string]int{"account_id": id}); err != nil {
			t.Fatalf("Publish failed: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		select {
		case <-payloads:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for message %d", i+1)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Listen did not return after cancel")
	}
}
