package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fishmasterki/fishmaster/internal/models"
)

// Postgres is a Store backed by PostgreSQL. It exists to exercise the
// storage seam: handlers and services only ever see the Store interface.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// NewPostgres connects to the database, verifies the connection and creates
// the schema if it is absent.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id text PRIMARY KEY,
			username text NOT NULL,
			email text NOT NULL,
			display_name text NOT NULL,
			avatar text,
			total_catches int NOT NULL DEFAULT 0,
			species_count int NOT NULL DEFAULT 0,
			spots_visited int NOT NULL DEFAULT 0,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS fish_species (
			id text PRIMARY KEY,
			name text NOT NULL,
			scientific_name text NOT NULL DEFAULT '',
			description text NOT NULL DEFAULT '',
			habitat text NOT NULL DEFAULT '',
			difficulty text NOT NULL DEFAULT '',
			image_url text NOT NULL DEFAULT '',
			average_weight real NOT NULL DEFAULT 0,
			average_length real NOT NULL DEFAULT 0,
			tips text NOT NULL DEFAULT '',
			common_baits text[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS fishing_spots (
			id text PRIMARY KEY,
			name text NOT NULL,
			description text NOT NULL DEFAULT '',
			latitude double precision NOT NULL,
			longitude double precision NOT NULL,
			fishing_score real NOT NULL DEFAULT 0,
			image_url text NOT NULL DEFAULT '',
			accessibility text NOT NULL DEFAULT '',
			facilities text[] NOT NULL DEFAULT '{}',
			best_seasons text[] NOT NULL DEFAULT '{}',
			common_species text[] NOT NULL DEFAULT '{}',
			recent_catches int NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS catches (
			id text PRIMARY KEY,
			user_id text NOT NULL,
			species_id text NOT NULL DEFAULT '',
			spot_id text NOT NULL DEFAULT '',
			weight double precision,
			length double precision,
			photo_url text NOT NULL DEFAULT '',
			notes text NOT NULL DEFAULT '',
			bait_used text NOT NULL DEFAULT '',
			weather_conditions text NOT NULL DEFAULT '',
			water_temperature double precision,
			is_released boolean NOT NULL DEFAULT false,
			likes int NOT NULL DEFAULT 0,
			comments int NOT NULL DEFAULT 0,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tips (
			id text PRIMARY KEY,
			title text NOT NULL,
			content text NOT NULL,
			category text NOT NULL DEFAULT '',
			difficulty text NOT NULL DEFAULT '',
			image_url text NOT NULL DEFAULT '',
			author text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS logbook_entries (
			id text PRIMARY KEY,
			user_id text NOT NULL,
			fish text NOT NULL,
			weight double precision NOT NULL,
			spot text NOT NULL,
			gear text NOT NULL,
			date text NOT NULL,
			points int NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// Users -----------------------------------------------------------------------

func (p *Postgres) CreateUser(ctx context.Context, ins models.InsertUser) (models.User, error) {
	u := models.User{
		ID:          newID(),
		Username:    ins.Username,
		Email:       ins.Email,
		DisplayName: ins.DisplayName,
		Avatar:      ins.Avatar,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO users (id, username, email, display_name, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.Email, u.DisplayName, u.Avatar, u.CreatedAt,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

func (p *Postgres) scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName, &u.Avatar,
		&u.TotalCatches, &u.SpeciesCount, &u.SpotsVisited, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("scanning user: %w", err)
	}
	return u, nil
}

const userColumns = `id, username, email, display_name, avatar, total_catches, species_count, spots_visited, created_at`

func (p *Postgres) GetUser(ctx context.Context, id string) (models.User, error) {
	return p.scanUser(p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return p.scanUser(p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (p *Postgres) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := p.scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateUserCounters(ctx context.Context, id string, totalCatches, speciesCount, spotsVisited int) (models.User, error) {
	return p.scanUser(p.pool.QueryRow(ctx, `
		UPDATE users SET total_catches = $2, species_count = $3, spots_visited = $4
		WHERE id = $1
		RETURNING `+userColumns,
		id, totalCatches, speciesCount, spotsVisited,
	))
}

// Species ---------------------------------------------------------------------

const speciesColumns = `id, name, scientific_name, description, habitat, difficulty, image_url, average_weight, average_length, tips, common_baits`

func (p *Postgres) CreateFishSpecies(ctx context.Context, s models.FishSpecies) (models.FishSpecies, error) {
	if s.ID == "" {
		s.ID = newID()
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO fish_species (`+speciesColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`,
		s.ID, s.Name, s.ScientificName, s.Description, s.Habitat, s.Difficulty,
		s.ImageURL, s.AverageWeight, s.AverageLength, s.Tips, s.CommonBaits,
	)
	if err != nil {
		return models.FishSpecies{}, fmt.Errorf("inserting species: %w", err)
	}
	return s, nil
}

func (p *Postgres) scanSpecies(row pgx.Row) (models.FishSpecies, error) {
	var s models.FishSpecies
	err := row.Scan(&s.ID, &s.Name, &s.ScientificName, &s.Description, &s.Habitat,
		&s.Difficulty, &s.ImageURL, &s.AverageWeight, &s.AverageLength, &s.Tips, &s.CommonBaits)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.FishSpecies{}, ErrNotFound
	}
	if err != nil {
		return models.FishSpecies{}, fmt.Errorf("scanning species: %w", err)
	}
	return s, nil
}

func (p *Postgres) GetFishSpecies(ctx context.Context, id string) (models.FishSpecies, error) {
	return p.scanSpecies(p.pool.QueryRow(ctx, `SELECT `+speciesColumns+` FROM fish_species WHERE id = $1`, id))
}

func (p *Postgres) ListFishSpecies(ctx context.Context) ([]models.FishSpecies, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+speciesColumns+` FROM fish_species ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying species: %w", err)
	}
	defer rows.Close()

	out := []models.FishSpecies{}
	for rows.Next() {
		s, err := p.scanSpecies(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Spots -----------------------------------------------------------------------

const spotColumns = `id, name, description, latitude, longitude, fishing_score, image_url, accessibility, facilities, best_seasons, common_species, recent_catches`

func (p *Postgres) CreateFishingSpot(ctx context.Context, s models.FishingSpot) (models.FishingSpot, error) {
	if s.ID == "" {
		s.ID = newID()
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO fishing_spots (`+spotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING`,
		s.ID, s.Name, s.Description, s.Latitude, s.Longitude, s.FishingScore,
		s.ImageURL, s.Accessibility, s.Facilities, s.BestSeasons, s.CommonSpecies, s.RecentCatches,
	)
	if err != nil {
		return models.FishingSpot{}, fmt.Errorf("inserting spot: %w", err)
	}
	return s, nil
}

func (p *Postgres) scanSpot(row pgx.Row) (models.FishingSpot, error) {
	var s models.FishingSpot
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Latitude, &s.Longitude,
		&s.FishingScore, &s.ImageURL, &s.Accessibility, &s.Facilities,
		&s.BestSeasons, &s.CommonSpecies, &s.RecentCatches)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.FishingSpot{}, ErrNotFound
	}
	if err != nil {
		return models.FishingSpot{}, fmt.Errorf("scanning spot: %w", err)
	}
	return s, nil
}

func (p *Postgres) GetFishingSpot(ctx context.Context, id string) (models.FishingSpot, error) {
	return p.scanSpot(p.pool.QueryRow(ctx, `SELECT `+spotColumns+` FROM fishing_spots WHERE id = $1`, id))
}

func (p *Postgres) ListFishingSpots(ctx context.Context) ([]models.FishingSpot, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+spotColumns+` FROM fishing_spots ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying spots: %w", err)
	}
	defer rows.Close()

	out := []models.FishingSpot{}
	for rows.Next() {
		s, err := p.scanSpot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateSpotRecentCatches(ctx context.Context, id string, recentCatches int) (models.FishingSpot, error) {
	return p.scanSpot(p.pool.QueryRow(ctx, `
		UPDATE fishing_spots SET recent_catches = $2 WHERE id = $1
		RETURNING `+spotColumns,
		id, recentCatches,
	))
}

// Catches ---------------------------------------------------------------------

const catchColumns = `id, user_id, species_id, spot_id, weight, length, photo_url, notes, bait_used, weather_conditions, water_temperature, is_released, likes, comments, created_at`

func (p *Postgres) CreateCatch(ctx context.Context, c models.Catch) (models.Catch, error) {
	c.ID = newID()
	c.CreatedAt = time.Now().UTC()
	c.Likes = 0
	c.Comments = 0
	_, err := p.pool.Exec(ctx, `
		INSERT INTO catches (`+catchColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		c.ID, c.UserID, c.SpeciesID, c.SpotID, c.Weight, c.Length, c.PhotoURL,
		c.Notes, c.BaitUsed, c.WeatherConditions, c.WaterTemperature,
		c.IsReleased, c.Likes, c.Comments, c.CreatedAt,
	)
	if err != nil {
		return models.Catch{}, fmt.Errorf("inserting catch: %w", err)
	}
	return c, nil
}

func (p *Postgres) scanCatch(row pgx.Row) (models.Catch, error) {
	var c models.Catch
	err := row.Scan(&c.ID, &c.UserID, &c.SpeciesID, &c.SpotID, &c.Weight, &c.Length,
		&c.PhotoURL, &c.Notes, &c.BaitUsed, &c.WeatherConditions, &c.WaterTemperature,
		&c.IsReleased, &c.Likes, &c.Comments, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Catch{}, ErrNotFound
	}
	if err != nil {
		return models.Catch{}, fmt.Errorf("scanning catch: %w", err)
	}
	return c, nil
}

func (p *Postgres) GetCatch(ctx context.Context, id string) (models.Catch, error) {
	return p.scanCatch(p.pool.QueryRow(ctx, `SELECT `+catchColumns+` FROM catches WHERE id = $1`, id))
}

func (p *Postgres) ListCatches(ctx context.Context, userID string) ([]models.Catch, error) {
	query := `SELECT ` + catchColumns + ` FROM catches ORDER BY created_at DESC`
	args := []any{}
	if userID != "" {
		query = `SELECT ` + catchColumns + ` FROM catches WHERE user_id = $1 ORDER BY created_at DESC`
		args = append(args, userID)
	}
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catches: %w", err)
	}
	defer rows.Close()

	out := []models.Catch{}
	for rows.Next() {
		c, err := p.scanCatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) IncrementCatchLikes(ctx context.Context, id string) (models.Catch, error) {
	return p.scanCatch(p.pool.QueryRow(ctx, `
		UPDATE catches SET likes = likes + 1 WHERE id = $1
		RETURNING `+catchColumns,
		id,
	))
}

// Tips ------------------------------------------------------------------------

const tipColumns = `id, title, content, category, difficulty, image_url, author, created_at`

func (p *Postgres) CreateTip(ctx context.Context, t models.Tip) (models.Tip, error) {
	if t.ID == "" {
		t.ID = newID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO tips (`+tipColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		t.ID, t.Title, t.Content, t.Category, t.Difficulty, t.ImageURL, t.Author, t.CreatedAt,
	)
	if err != nil {
		return models.Tip{}, fmt.Errorf("inserting tip: %w", err)
	}
	return t, nil
}

func (p *Postgres) scanTip(row pgx.Row) (models.Tip, error) {
	var t models.Tip
	err := row.Scan(&t.ID, &t.Title, &t.Content, &t.Category, &t.Difficulty,
		&t.ImageURL, &t.Author, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Tip{}, ErrNotFound
	}
	if err != nil {
		return models.Tip{}, fmt.Errorf("scanning tip: %w", err)
	}
	return t, nil
}

func (p *Postgres) GetTip(ctx context.Context, id string) (models.Tip, error) {
	return p.scanTip(p.pool.QueryRow(ctx, `SELECT `+tipColumns+` FROM tips WHERE id = $1`, id))
}

func (p *Postgres) ListTips(ctx context.Context) ([]models.Tip, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+tipColumns+` FROM tips ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("querying tips: %w", err)
	}
	defer rows.Close()

	out := []models.Tip{}
	for rows.Next() {
		t, err := p.scanTip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Logbook ---------------------------------------------------------------------

const logbookColumns = `id, user_id, fish, weight, spot, gear, date, points`

func (p *Postgres) CreateLogbookEntry(ctx context.Context, e models.LogbookEntry) (models.LogbookEntry, error) {
	e.ID = newID()
	_, err := p.pool.Exec(ctx, `
		INSERT INTO logbook_entries (`+logbookColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.Fish, e.Weight, e.Spot, e.Gear, e.Date, e.Points,
	)
	if err != nil {
		return models.LogbookEntry{}, fmt.Errorf("inserting logbook entry: %w", err)
	}
	return e, nil
}

func (p *Postgres) scanLogbookEntry(row pgx.Row) (models.LogbookEntry, error) {
	var e models.LogbookEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Fish, &e.Weight, &e.Spot, &e.Gear, &e.Date, &e.Points)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LogbookEntry{}, ErrNotFound
	}
	if err != nil {
		return models.LogbookEntry{}, fmt.Errorf("scanning logbook entry: %w", err)
	}
	return e, nil
}

func (p *Postgres) GetLogbookEntry(ctx context.Context, id string) (models.LogbookEntry, error) {
	return p.scanLogbookEntry(p.pool.QueryRow(ctx, `SELECT `+logbookColumns+` FROM logbook_entries WHERE id = $1`, id))
}

func (p *Postgres) ListLogbookEntries(ctx context.Context, userID string) ([]models.LogbookEntry, error) {
	query := `SELECT ` + logbookColumns + ` FROM logbook_entries`
	args := []any{}
	if userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying logbook entries: %w", err)
	}
	defer rows.Close()

	out := []models.LogbookEntry{}
	for rows.Next() {
		e, err := p.scanLogbookEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateLogbookEntry(ctx context.Context, id string, upd LogbookEntryUpdate) (models.LogbookEntry, error) {
	return p.scanLogbookEntry(p.pool.QueryRow(ctx, `
		UPDATE logbook_entries SET
			fish = COALESCE($2, fish),
			weight = COALESCE($3, weight),
			spot = COALESCE($4, spot),
			gear = COALESCE($5, gear),
			date = COALESCE($6, date),
			points = COALESCE($7, points)
		WHERE id = $1
		RETURNING `+logbookColumns,
		id, upd.Fish, upd.Weight, upd.Spot, upd.Gear, upd.Date, upd.Points,
	))
}

func (p *Postgres) DeleteLogbookEntry(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM logbook_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting logbook entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
