package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	memcache "github.com/yamemcache/go-memcache"
	"github.com/yamemcache/go-memcache/meta"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	serversFlag := flag.String("servers", "", "comma-separated server addresses (overrides config)")
	logLevelFlag := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg := defaultCLIConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadCLIConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *serversFlag != "" {
		cfg.Servers = strings.Split(*serversFlag, ",")
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", cfg.LogLevel)
		os.Exit(1)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	client, err := memcache.NewClient(memcache.NewStaticServers(cfg.Servers...), memcache.Config{
		MaxSize: cfg.PoolSize,
		Dialer:  &net.Dialer{Timeout: cfg.ConnectTimeout},
		Logger:  &logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	fmt.Println("memcache cli")
	fmt.Println("commands: get <key>, mget <key>..., set <key> <value> [ttl] [flags], delete <key>, version, ping, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		run(ctx, client, strings.ToLower(parts[0]), parts[1:])
		cancel()
	}
}

func run(ctx context.Context, client *memcache.Client, command string, args []string) {
	switch command {
	case "get":
		if len(args) != 1 {
			fmt.Println("usage: get <key>")
			return
		}
		handleGet(ctx, client, args[0])

	case "mget", "multi-get":
		if len(args) == 0 {
			fmt.Println("usage: mget <key> <key> ...")
			return
		}
		handleMultiGet(ctx, client, args)

	case "set":
		if len(args) < 2 || len(args) > 4 {
			fmt.Println("usage: set <key> <value> [ttl_seconds] [flags]")
			return
		}
		handleSet(ctx, client, args)

	case "delete", "del":
		if len(args) != 1 {
			fmt.Println("usage: delete <key>")
			return
		}
		handleDelete(ctx, client, args[0])

	case "version":
		handleVersion(ctx, client)

	case "ping":
		if err := client.Ping(ctx); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Println("ok")

	case "quit", "exit":
		os.Exit(0)

	default:
		fmt.Printf("unknown command %q\n", command)
	}
}

func handleGet(ctx context.Context, client *memcache.Client, key string) {
	value, err := client.Get(ctx, key)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if value == nil {
		fmt.Println("(not found)")
		return
	}
	fmt.Printf("%q (flags=%d)\n", value.Data, value.Flags)
}

func handleMultiGet(ctx context.Context, client *memcache.Client, keys []string) {
	values, err := client.GetMany(ctx, keys)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	found := make(map[string]bool, len(values))
	for _, kv := range values {
		found[kv.Key] = true
		fmt.Printf("%s: %q (flags=%d)\n", kv.Key, kv.Value.Data, kv.Value.Flags)
	}
	for _, key := range keys {
		if !found[key] {
			fmt.Printf("%s: (not found)\n", key)
		}
	}
}

func handleSet(ctx context.Context, client *memcache.Client, args []string) {
	value := meta.Value{Data: []byte(args[1])}

	if len(args) >= 3 {
		ttl, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			fmt.Printf("invalid ttl: %v\n", err)
			return
		}
		value.TTL = uint32(ttl)
	}
	if len(args) == 4 {
		flags, err := strconv.ParseUint(args[3], 10, 32)
		if err != nil {
			fmt.Printf("invalid flags: %v\n", err)
			return
		}
		value.Flags = uint32(flags)
	}

	start := time.Now()
	if err := client.Set(ctx, args[0], value); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("stored (%s)\n", time.Since(start).Round(time.Microsecond))
}

func handleDelete(ctx context.Context, client *memcache.Client, key string) {
	found, err := client.Delete(ctx, key)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if !found {
		fmt.Println("(not found)")
		return
	}
	fmt.Println("deleted")
}

func handleVersion(ctx context.Context, client *memcache.Client) {
	versions, err := client.Version(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	for addr, version := range versions {
		fmt.Printf("%s: %s\n", addr, version)
	}
}
