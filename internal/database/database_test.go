package database

import (
	"context"
	"log"
	"testing"
	"time"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

func TestMain(m *testing.M) {
	midTeardown, _, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil && midTeardown(ctx) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
}

func TestHealth(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}
	stats := db.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestSeededFixtures(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}

	if TestUserHR1.ID == 0 || TestUserHR2.ID == 0 {
		t.Fatal("expected HR users to be seeded")
	}
	if TestProfile1.UserID != TestUserApplicant1.ID {
		t.Fatalf("profile 1 should belong to applicant 1")
	}
	if TestJobPostHR2.HRID != TestUserHR2.ID {
		t.Fatalf("job post HR2 should belong to HR2")
	}

	// company-less job post keeps a null foreign key
	if TestJobPostHR1B.CompanyID != nil {
		t.Fatalf("expected TestJobPostHR1B to be company-less")
	}

	var count int64
	if err := db.Model(&TestProfile1).Count(&count).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count < 2 {
		t.Fatalf("expected at least 2 applicant profiles, got %d", count)
	}
}
