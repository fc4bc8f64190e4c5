// Command banctl is the operator CLI for the banned email list.
//
// Usage:
//
//	banctl check <email>
//	banctl ban <email>
//	banctl unban <email>
//	banctl list
//	banctl clear
//
// Connection settings come from the environment: REDIS_ADDR,
// REDIS_PASSWORD, BANNED_LIST_KEY (defaults: localhost:6379, empty,
// banned:emails).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisrepo "github.com/ignite/spamguard/internal/repository/redis"
	"github.com/ignite/spamguard/internal/service/bannedlist"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: banctl <check|ban|unban|list|clear> [email]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	command := os.Args[1]

	addr := envOrDefault("REDIS_ADDR", "localhost:6379")
	key := envOrDefault("BANNED_LIST_KEY", bannedlist.DefaultKey)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: cannot connect to redis at %s: %v\n", addr, err)
		os.Exit(1)
	}

	repo := redisrepo.NewBannedListRepo(client, key)

	arg := func() string {
		if len(os.Args) < 3 {
			usage()
		}
		return os.Args[2]
	}

	var err error
	switch command {
	case "check":
		email := arg()
		var banned bool
		banned, err = repo.IsBanned(ctx, email)
		if err == nil {
			if banned {
				fmt.Printf("✗ %s is BANNED\n", email)
			} else {
				fmt.Printf("✓ %s is not banned\n", email)
			}
		}
	case "ban":
		email := arg()
		if err = repo.Ban(ctx, email); err == nil {
			fmt.Printf("✓ banned %s\n", email)
		}
	case "unban":
		email := arg()
		if err = repo.Unban(ctx, email); err == nil {
			fmt.Printf("✓ unbanned %s\n", email)
		}
	case "list":
		var emails []string
		emails, err = repo.AllBanned(ctx)
		if err == nil {
			for _, e := range emails {
				fmt.Println(e)
			}
			fmt.Fprintf(os.Stderr, "%d banned address(es)\n", len(emails))
		}
	case "clear":
		if err = repo.Clear(ctx); err == nil {
			fmt.Println("✓ banned list cleared")
		}
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %s failed: %v\n", command, err)
		os.Exit(1)
	}
}
