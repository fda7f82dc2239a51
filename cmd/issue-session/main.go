// Command issue-session mints a bearer token for a user. Intended for
// operators and local development until the identity service owns
// login; the printed token goes in the Authorization header.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"marketplace-service/config"
	"marketplace-service/internal/redisclient"
	"marketplace-service/internal/session"
)

func main() {
	userID := flag.Int64("user", 0, "user id the session belongs to")
	role := flag.String("role", "VENDOR", "session role (VENDOR or ADMIN)")
	vendorID := flag.Int64("vendor", 0, "vendor id, required for VENDOR sessions")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("-user is required")
	}
	if *role != "VENDOR" && *role != "ADMIN" {
		log.Fatalf("unknown role %q, want VENDOR or ADMIN", *role)
	}
	if *role == "VENDOR" && *vendorID == 0 {
		log.Fatal("-vendor is required for VENDOR sessions")
	}

	cfg := config.Load()

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	sessions := session.NewStore(redisClient, time.Duration(cfg.Business.SessionTTLSeconds)*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, err := sessions.Create(ctx, &session.Session{
		UserID:   *userID,
		Role:     *role,
		VendorID: *vendorID,
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	fmt.Printf("token: %s\n", token)
	fmt.Printf("expires in: %ds\n", cfg.Business.SessionTTLSeconds)
}
