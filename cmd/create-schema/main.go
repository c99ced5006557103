// Command create-schema creates the case_analyses and files tables.
package main

import (
	"context"
	"fmt"
	"log"

	"mizan-backend/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	statements := []struct {
		name string
		sql  string
	}{
		{
			name: "case_analyses table",
			sql: `
CREATE TABLE IF NOT EXISTS case_analyses (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID,
    case_id VARCHAR(64) NOT NULL UNIQUE,
    case_type VARCHAR(50),
    description TEXT,
    result JSONB NOT NULL DEFAULT '{}'::jsonb,
    confidence INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW()
);`,
		},
		{
			name: "files table",
			sql: `
CREATE TABLE IF NOT EXISTS files (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID,
    analysis_id UUID REFERENCES case_analyses(id) ON DELETE SET NULL,
    filename VARCHAR(255) NOT NULL,
    mime_type VARCHAR(100) NOT NULL,
    size BIGINT NOT NULL,
    storage_path TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);`,
		},
		{
			name: "index: analyses by user",
			sql:  "CREATE INDEX IF NOT EXISTS idx_case_analyses_user_id ON case_analyses(user_id) WHERE user_id IS NOT NULL;",
		},
		{
			name: "index: analyses by case id",
			sql:  "CREATE INDEX IF NOT EXISTS idx_case_analyses_case_id ON case_analyses(case_id);",
		},
		{
			name: "index: analyses by creation time",
			sql:  "CREATE INDEX IF NOT EXISTS idx_case_analyses_created_at ON case_analyses(created_at DESC);",
		},
		{
			name: "index: files by analysis",
			sql:  "CREATE INDEX IF NOT EXISTS idx_files_analysis_id ON files(analysis_id) WHERE analysis_id IS NOT NULL;",
		},
		{
			name: "index: analysis result JSONB",
			sql:  "CREATE INDEX IF NOT EXISTS idx_case_analyses_result_gin ON case_analyses USING gin (result);",
		},
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt.sql); err != nil {
			log.Fatalf("Failed to create %s: %v", stmt.name, err)
		}
		log.Printf("✓ Created %s", stmt.name)
	}

	fmt.Println("\n✅ Database schema created successfully!")
}
