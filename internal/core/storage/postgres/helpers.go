package postgres

import (
	"database/sql"
	"fmt"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanWatchLogRow scans one watch_logs row.
func scanWatchLogRow(row scanner) (v1.WatchLog, error) {
	var l v1.WatchLog
	if err := row.Scan(
		&l.ID,
		&l.WatchHistoryID,
		&l.UserID,
		&l.MovieID,
		&l.WatchedOn,
		&l.CreatedAt,
	); err != nil {
		return v1.WatchLog{}, fmt.Errorf("failed to scan watch log row: %w", err)
	}
	return l, nil
}

// scanLegacyLogRow scans one logs row. rating is NUMERIC NULL and maps onto
// decimal.NullDecimal directly.
func scanLegacyLogRow(row scanner) (v1.LegacyLog, error) {
	var l v1.LegacyLog
	if err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.MovieID,
		&l.WatchedOn,
		&l.Rating,
		&l.Rewatch,
		&l.CreatedAt,
	); err != nil {
		return v1.LegacyLog{}, fmt.Errorf("failed to scan legacy log row: %w", err)
	}
	return l, nil
}

// scanMovieRow scans the movies row; genres and credits are loaded separately.
func scanMovieRow(row scanner) (*v1.Movie, error) {
	var (
		m           v1.Movie
		externalID  sql.NullInt64
		releaseDate sql.NullString
		runtime     sql.NullInt64
		posterPath  sql.NullString
	)
	if err := row.Scan(&m.ID, &externalID, &m.Title, &releaseDate, &runtime, &posterPath); err != nil {
		return nil, err
	}

	m.ExternalID = externalID.Int64
	m.ReleaseDate = releaseDate.String
	m.PosterPath = posterPath.String
	if runtime.Valid {
		m.RuntimeMinutes = v1.IntPtr(int(runtime.Int64))
	}
	m.Genres = []string{}
	m.Credits = []v1.Credit{}
	return &m, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableRuntime(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
