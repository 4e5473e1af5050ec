// Command seed_demo creates a demo database with sample accounts and a bit
// of audit history, for poking at the API locally.
// Usage: go run cmd/seed_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/mvoskres/postroom/internal/auth"
	"github.com/mvoskres/postroom/internal/database"
	auditrepo "github.com/mvoskres/postroom/internal/database/audit"
	"github.com/mvoskres/postroom/internal/database/users"
	"github.com/mvoskres/postroom/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoAccount struct {
	Username string
	Password string
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := users.NewRepository(db.DB)
	audits := auditrepo.NewRepository(db.DB)
	hasher := auth.NewArgon2idHasher()

	accounts := []demoAccount{
		{Username: "alice", Password: "wonderland"},
		{Username: "bobross", Password: "happytrees"},
		{Username: "charlie", Password: "chocolate"},
	}

	now := time.Now()
	for i, acct := range accounts {
		hash, err := hasher.Hash(acct.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", acct.Username, err)
		}

		user, err := repo.Insert(ctx, acct.Username, hash)
		if err != nil {
			log.Printf("Failed to create account %s: %v", acct.Username, err)
			continue
		}
		log.Printf("Created: %s (id=%d, password: %q)", user.Username, user.ID, acct.Password)

		if err := audits.LogEvent(&entities.AuditEvent{
			UserID:    user.ID,
			EventType: entities.AuditEventAuth,
			Action:    "register",
			Username:  user.Username,
			IPAddress: "127.0.0.1",
			Status:    entities.AuditStatusSuccess,
			CreatedAt: now.Add(time.Duration(-i) * time.Hour),
		}); err != nil {
			log.Printf("Failed to record audit event for %s: %v", acct.Username, err)
		}
	}

	// A couple of failed attempts so the audit trail has texture
	if err := audits.LogEvent(&entities.AuditEvent{
		EventType: entities.AuditEventAuth,
		Action:    "login",
		Username:  "alice",
		IPAddress: "127.0.0.1",
		Status:    entities.AuditStatusRejected,
		Detail:    "incorrect password",
		CreatedAt: now.Add(-30 * time.Minute),
	}); err != nil {
		log.Printf("Failed to record audit event: %v", err)
	}

	log.Println("Demo database generated successfully!")
}
