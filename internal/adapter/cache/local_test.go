package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLocalCache_SetGet(t *testing.T) {
	c := NewLocalCache(time.Minute, zap.NewNop())
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	val, err := c.Get(ctx, "k")
	if err != nil || val != "v" {
		t.Errorf("Get = (%q, %v), want (\"v\", nil)", val, err)
	}
}

func TestLocalCache_MissingKey(t *testing.T) {
	c := NewLocalCache(time.Minute, zap.NewNop())
	defer c.Close()

	if _, err := c.Get(context.Background(), "absent"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestLocalCache_Expiration(t *testing.T) {
	c := NewLocalCache(time.Minute, zap.NewNop())
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := c.Get(ctx, "k"); err == nil {
		t.Error("expected expired key to error")
	}
}

func TestLocalCache_Delete(t *testing.T) {
	c := NewLocalCache(time.Minute, zap.NewNop())
	defer c.Close()

	ctx := context.Background()
	_ = c.Set(ctx, "k", "v", 0)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := c.Get(ctx, "k"); err == nil {
		t.Error("deleted key must not resolve")
	}
}

func TestLocalCache_NonStringValues(t *testing.T) {
	c := NewLocalCache(time.Minute, zap.NewNop())
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "bytes", []byte("raw"), 0); err != nil {
		t.Fatalf("Set bytes: %v", err)
	}
	if val, _ := c.Get(ctx, "bytes"); val != "raw" {
		t.Errorf("bytes value = %q", val)
	}

	if err := c.Set(ctx, "obj", map[string]int{"a": 1}, 0); err != nil {
		t.Fatalf("Set object: %v", err)
	}
	if val, _ := c.Get(ctx, "obj"); val != `{"a":1}` {
		t.Errorf("object value = %q", val)
	}
}
