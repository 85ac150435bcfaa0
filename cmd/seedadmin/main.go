// Command seedadmin creates the initial admin account, or promotes an
// existing account to admin, directly against the database. Intended for
// first-run bootstrap and recovery when no admin can log in.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	name := flag.String("name", "Admin", "display name for the admin account")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seedadmin -email admin@example.com -password secret [-name Admin]")
		os.Exit(2)
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	var id string
	err = conn.QueryRow(`
insert into users (id, name, email, phone, password_hash, role, created_at, updated_at)
values (gen_random_uuid(), $1, lower($2), '', $3, 'admin', now(), now())
on conflict (email) do update
set role = 'admin',
    password_hash = excluded.password_hash,
    updated_at = now()
returning id;
`, *name, *email, string(hash)).Scan(&id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("admin account ready: %s (%s)\n", *email, id)
}
