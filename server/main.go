package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/calexandrepcjr/cheapskate-fiscal/parser"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/catalog"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/db"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/logger"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type Application struct {
	Config Config
	DB     *sql.DB
	Q      *db.Queries
	Parser *parser.Parser
	Log    zerolog.Logger
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fiscal-server: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(cfg.Debug)

	// Initialize Database
	dbConn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer dbConn.Close()

	if err := dbConn.Ping(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("Failed to ping database")
	}

	app := &Application{
		Config: cfg,
		DB:     dbConn,
		Q:      db.New(dbConn),
		Log:    log,
	}

	ctx := context.Background()
	if err := app.ensureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure schema")
	}

	tables := catalog.Load(cfg.CategoryConfig, log)
	if err := app.ensureSeed(ctx, tables); err != nil {
		log.Warn().Err(err).Msg("Failed to seed taxonomy")
	}
	app.Parser = app.loadParser(ctx, tables)

	log.Info().Int("port", cfg.Port).Str("db", cfg.DBPath).Msg("Starting server")
	addr := fmt.Sprintf(":%d", cfg.Port)
	if err := http.ListenAndServe(addr, app.router()); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func (app *Application) ensureSchema(ctx context.Context) error {
	if _, err := app.DB.ExecContext(ctx, db.Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// ensureSeed writes tables into the taxonomy store when it is empty. A
// populated store is left alone, so edits made in the database survive
// restarts.
func (app *Application) ensureSeed(ctx context.Context, tables parser.Tables) error {
	count, err := app.Q.CountCategories(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	app.Log.Info().Int("categories", len(tables.Categories)).Msg("Seeding taxonomy")
	return catalog.Seed(ctx, app.DB, tables)
}

// loadParser builds the parser from the taxonomy store, using base for the
// sections the store does not hold. If the stored taxonomy is unusable the
// parser is built from base alone.
func (app *Application) loadParser(ctx context.Context, base parser.Tables) *parser.Parser {
	tables, err := catalog.FromDB(ctx, app.Q, base)
	if err == nil && len(tables.Categories) == 0 {
		err = errors.New("taxonomy store is empty")
	}
	if err == nil {
		var p *parser.Parser
		if p, err = parser.New(tables); err == nil {
			app.Log.Info().
				Int("categories", len(tables.Categories)).
				Int("keyword_entries", len(tables.CategoryKeywords)).
				Msg("Loaded taxonomy from database")
			return p
		}
	}

	app.Log.Warn().Err(err).Msg("Stored taxonomy unusable, using configured tables")
	p, err := parser.New(base)
	if err != nil {
		// catalog.Load only returns validated tables.
		app.Log.Error().Err(err).Msg("Configured tables invalid, using built-in tables")
		return parser.NewDefault()
	}
	return p
}
