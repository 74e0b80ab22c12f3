package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/navdrishti/platform-api/config"
	"github.com/navdrishti/platform-api/pkg/helpers"
)

type seedUser struct {
	email    string
	name     string
	userType string
	status   string
	emailOK  bool
	phoneOK  bool
	phone    string
}

// Seeds one account per archetype so every branch of the permission rules can
// be exercised against a local stack.
var seedUsers = []seedUser{
	{"ngo@example.org", "Demo NGO", "ngo", "verified", true, false, ""},
	{"company@example.com", "Demo Company", "company", "verified", true, true, "+911234567890"},
	{"individual@example.com", "Demo Individual", "individual", "verified", true, false, ""},
	{"pending@example.com", "Pending Company", "company", "pending", true, false, ""},
	{"newcomer@example.com", "Fresh Signup", "individual", "unverified", false, false, ""},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ids := map[string]string{}
	for _, su := range seedUsers {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (email, password_hash, name, user_type, verification_status, email_verified, phone_verified, phone)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (email) DO UPDATE SET
				name = EXCLUDED.name,
				user_type = EXCLUDED.user_type,
				verification_status = EXCLUDED.verification_status,
				email_verified = EXCLUDED.email_verified,
				phone_verified = EXCLUDED.phone_verified,
				phone = EXCLUDED.phone,
				updated_at = now()
			RETURNING id
		`, su.email, hash, su.name, su.userType, su.status, su.emailOK, su.phoneOK, su.phone).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed %s: %v", su.email, err)
		}
		ids[su.email] = id
		fmt.Printf("seeded user: id=%s email=%s type=%s status=%s password=%s\n", id, su.email, su.userType, su.status, password)
	}

	seedPosting(db, "service_requests", ids["ngo@example.org"],
		"Volunteers for weekend literacy camp", "Two-day reading camp for primary school children.", "education", "Pune")
	seedPosting(db, "service_offers", ids["ngo@example.org"],
		"Free legal aid clinic", "Weekly walk-in consultations for land-rights disputes.", "legal", "Nagpur")
	seedListing(db, ids["company@example.com"],
		"Refurbished laptops (batch of 10)", "Tested, with chargers. Priced for NGO programs.", "electronics", 45000_00)
}

func seedPosting(db *sql.DB, table, ngoID, title, description, category, location string) {
	var id string
	err := db.QueryRow(`
		INSERT INTO `+table+` (ngo_id, title, description, category, location, open)
		SELECT $1, $2, $3, $4, $5, true
		WHERE NOT EXISTS (SELECT 1 FROM `+table+` WHERE ngo_id = $1 AND title = $2)
		RETURNING id
	`, ngoID, title, description, category, location).Scan(&id)
	if err == sql.ErrNoRows {
		fmt.Printf("%s already seeded: %q\n", table, title)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed %s: %v", table, err)
	}
	fmt.Printf("seeded %s: id=%s title=%q\n", table, id, title)
}

func seedListing(db *sql.DB, sellerID, title, description, category string, priceCents int64) {
	var id string
	err := db.QueryRow(`
		INSERT INTO listings (seller_id, title, description, category, price_cents, currency, active)
		SELECT $1, $2, $3, $4, $5, 'INR', true
		WHERE NOT EXISTS (SELECT 1 FROM listings WHERE seller_id = $1 AND title = $2)
		RETURNING id
	`, sellerID, title, description, category, priceCents).Scan(&id)
	if err == sql.ErrNoRows {
		fmt.Printf("listing already seeded: %q\n", title)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed listing: %v", err)
	}
	fmt.Printf("seeded listing: id=%s title=%q\n", id, title)
}
