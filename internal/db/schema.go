package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Idempotent DDL for the three tables. pgcrypto backs gen_random_uuid on
// PostgreSQL versions older than 13.
var statements = []string{
	`create extension if not exists pgcrypto`,
	`create table if not exists users (
		id uuid primary key default gen_random_uuid(),
		name text not null,
		email text not null unique,
		phone text not null default '',
		password_hash text not null,
		role text not null default 'donor',
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create table if not exists campaigns (
		id uuid primary key default gen_random_uuid(),
		title text not null,
		description text not null,
		goal_amount bigint not null check (goal_amount > 0),
		collected_amount bigint not null default 0 check (collected_amount >= 0),
		deadline timestamptz not null,
		status text not null default 'Active' check (status in ('Active', 'Completed')),
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create table if not exists donations (
		id uuid primary key default gen_random_uuid(),
		user_id uuid not null references users(id),
		campaign_id uuid references campaigns(id) on delete set null,
		amount_int bigint not null check (amount_int > 0),
		donation_type text not null check (donation_type in ('Zakat', 'Sadqah', 'Fitra', 'General')),
		category text not null check (category in ('Food', 'Education', 'Medical', 'General')),
		payment_method text not null check (payment_method in ('Cash', 'Bank', 'Online')),
		status text not null default 'Pending' check (status in ('Pending', 'Verified')),
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create index if not exists idx_donations_status_created on donations(status, created_at desc)`,
	`create index if not exists idx_donations_type_created on donations(donation_type, created_at desc)`,
	`create index if not exists idx_donations_user on donations(user_id)`,
	`create index if not exists idx_donations_campaign on donations(campaign_id) where campaign_id is not null`,
}

// EnsureSchema applies the table and index definitions. Safe to run on every
// startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
