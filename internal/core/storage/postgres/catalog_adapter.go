package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/storage"
)

// CatalogAdapter implements storage.Catalog on the same pool as Adapter.
type CatalogAdapter struct {
	db    *sql.DB
	nowFn func() time.Time
}

// NewCatalogAdapter wraps an existing pool. The caller owns db.
func NewCatalogAdapter(db *sql.DB) *CatalogAdapter {
	return &CatalogAdapter{
		db:    db,
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// GetMovie loads the movie row with its genres and credits.
func (c *CatalogAdapter) GetMovie(ctx context.Context, id int64) (*v1.Movie, error) {
	return loadMovie(ctx, c.db, id)
}

// GetOrCreateFromExternal returns the catalog movie for movie.ExternalID,
// inserting it with genres and credits when absent.
func (c *CatalogAdapter) GetOrCreateFromExternal(ctx context.Context, movie *v1.Movie) (*v1.Movie, error) {
	if movie == nil || movie.ExternalID == 0 {
		return nil, errors.New("external id is required")
	}
	if strings.TrimSpace(movie.Title) == "" {
		return nil, errors.New("title is required")
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, found, err := findByExternalID(ctx, tx, movie.ExternalID)
	if err != nil {
		return nil, err
	}

	if !found {
		id, found, err = c.insertMovie(ctx, tx, movie)
		if err != nil {
			return nil, err
		}
		if !found {
			// Lost the insert race; the winner's row is visible now.
			id, found, err = findByExternalID(ctx, tx, movie.ExternalID)
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, fmt.Errorf("movie %d vanished after conflicting insert", movie.ExternalID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return loadMovie(ctx, c.db, id)
}

// UpdateRuntime persists a resolved runtime.
func (c *CatalogAdapter) UpdateRuntime(ctx context.Context, movieID int64, minutes int) error {
	res, err := c.db.ExecContext(ctx, queryUpdateRuntime, movieID, minutes, c.nowFn())
	if err != nil {
		return fmt.Errorf("failed to update runtime: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListMoviesMissingRuntime returns linked movies without a runtime, for the
// backfill. Genres and credits are not loaded.
func (c *CatalogAdapter) ListMoviesMissingRuntime(ctx context.Context, afterID int64, limit int) ([]*v1.Movie, error) {
	rows, err := c.db.QueryContext(ctx, queryListMoviesMissingRuntime, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies missing runtime: %w", err)
	}
	defer rows.Close()

	movies := make([]*v1.Movie, 0)
	for rows.Next() {
		m, err := scanMovieRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}
	return movies, nil
}

// insertMovie returns found=false when ON CONFLICT skipped the insert.
func (c *CatalogAdapter) insertMovie(ctx context.Context, tx *sql.Tx, movie *v1.Movie) (int64, bool, error) {
	var id int64
	err := tx.QueryRowContext(ctx, queryInsertMovie,
		movie.ExternalID,
		movie.Title,
		nullableString(movie.ReleaseDate),
		nullableRuntime(movie.RuntimeMinutes),
		nullableString(movie.PosterPath),
		c.nowFn(),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert movie: %w", err)
	}

	for i, name := range movie.Genres {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var genreID int64
		if err := tx.QueryRowContext(ctx, queryUpsertGenre, name).Scan(&genreID); err != nil {
			return 0, false, fmt.Errorf("failed to upsert genre %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, queryInsertMovieGenre, id, genreID, i); err != nil {
			return 0, false, fmt.Errorf("failed to link genre %q: %w", name, err)
		}
	}

	for i, credit := range movie.Credits {
		name := strings.TrimSpace(credit.PersonName)
		if name == "" || (credit.Role != v1.RoleDirector && credit.Role != v1.RoleCast) {
			continue
		}
		var personID int64
		if err := tx.QueryRowContext(ctx, queryUpsertPerson, name, credit.ProfilePath).Scan(&personID); err != nil {
			return 0, false, fmt.Errorf("failed to upsert person %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, queryInsertMoviePerson, id, personID, credit.Role, i); err != nil {
			return 0, false, fmt.Errorf("failed to link person %q: %w", name, err)
		}
	}

	slog.Info("[Postgres] Movie imported",
		"movie_id", id,
		"tmdb_id", movie.ExternalID,
		"genres", len(movie.Genres),
		"credits", len(movie.Credits))
	return id, true, nil
}

func findByExternalID(ctx context.Context, q queryer, externalID int64) (int64, bool, error) {
	var id int64
	err := q.QueryRowContext(ctx, queryFindMovieByExternalID, externalID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query movie by tmdb id: %w", err)
	}
	return id, true, nil
}

func loadMovie(ctx context.Context, q queryer, id int64) (*v1.Movie, error) {
	movie, err := scanMovieRow(q.QueryRowContext(ctx, queryGetMovie, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie: %w", err)
	}

	if movie.Genres, err = loadGenres(ctx, q, id); err != nil {
		return nil, err
	}
	if movie.Credits, err = loadCredits(ctx, q, id); err != nil {
		return nil, err
	}
	return movie, nil
}

func loadGenres(ctx context.Context, q queryer, movieID int64) ([]string, error) {
	rows, err := q.QueryContext(ctx, queryMovieGenres, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie genres: %w", err)
	}
	defer rows.Close()

	genres := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan genre row: %w", err)
		}
		genres = append(genres, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}
	return genres, nil
}

func loadCredits(ctx context.Context, q queryer, movieID int64) ([]v1.Credit, error) {
	rows, err := q.QueryContext(ctx, queryMovieCredits, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie credits: %w", err)
	}
	defer rows.Close()

	credits := make([]v1.Credit, 0)
	for rows.Next() {
		var credit v1.Credit
		if err := rows.Scan(&credit.PersonName, &credit.Role, &credit.ProfilePath); err != nil {
			return nil, fmt.Errorf("failed to scan credit row: %w", err)
		}
		credits = append(credits, credit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credits: %w", err)
	}
	return credits, nil
}
