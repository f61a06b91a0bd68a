package memcache_test

import (
	"context"
	"fmt"
	"time"

	memcache "github.com/yamemcache/go-memcache"
	"github.com/yamemcache/go-memcache/meta"
)

// Example demonstrating a pooled client with circuit breakers per server
func ExampleNewClient() {
	servers := memcache.NewStaticServers("localhost:11211", "localhost:11212")

	client, err := memcache.NewClient(servers, memcache.Config{
		MaxSize:           10,
		NewCircuitBreaker: memcache.NewCircuitBreakerConfig(3, time.Minute, 10*time.Second),
	})
	if err != nil {
		fmt.Println("client:", err)
		return
	}
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "user:123", meta.Value{Data: []byte("John"), TTL: 300})

	value, err := client.Get(ctx, "user:123")
	if err != nil {
		fmt.Println("get:", err)
		return
	}
	if value == nil {
		fmt.Println("miss")
		return
	}
	fmt.Printf("user:123 = %s\n", value.Data)
}
