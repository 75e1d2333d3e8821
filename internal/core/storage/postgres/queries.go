package postgres

// SQL for the watch-event read path. Both channels are ordered by
// (watched_on, id) so callers observe insertion order within a day.

const (
	queryFindWatchHistory = `
		SELECT id, user_id, created_at
		FROM watch_histories
		WHERE user_id = $1
	`

	queryListHistoryLogs = `
		SELECT id, watch_history_id, user_id, movie_id, watched_on, created_at
		FROM watch_logs
		WHERE watch_history_id = $1
		ORDER BY watched_on ASC, id ASC
	`

	// queryListHistoryLogsByUser relies on the user_id copied from the owning
	// watch history at insert time.
	queryListHistoryLogsByUser = `
		SELECT id, watch_history_id, user_id, movie_id, watched_on, created_at
		FROM watch_logs
		WHERE user_id = $1
		ORDER BY watched_on ASC, id ASC
	`

	queryListLegacyLogs = `
		SELECT id, user_id, movie_id, watched_on, rating, rewatch, created_at
		FROM logs
		WHERE user_id = $1
		ORDER BY watched_on ASC, id ASC
	`

	queryDistinctWatchYears = `
		SELECT COALESCE(ARRAY_AGG(year ORDER BY year DESC), '{}')
		FROM (
			SELECT DISTINCT EXTRACT(YEAR FROM watched_on)::int AS year
			FROM watch_logs
			WHERE user_id = $1 AND watched_on IS NOT NULL
		) AS years
	`
)

// SQL for the movie catalog.

const (
	queryGetMovie = `
		SELECT id, tmdb_id, title, release_date, runtime, poster_path
		FROM movies
		WHERE id = $1
	`

	queryMovieGenres = `
		SELECT g.name
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = $1
		ORDER BY mg.position ASC, g.id ASC
	`

	queryMovieCredits = `
		SELECT p.name, mp.role, COALESCE(p.profile_path, '')
		FROM movie_people mp
		JOIN people p ON p.id = mp.person_id
		WHERE mp.movie_id = $1
		ORDER BY mp.position ASC, mp.id ASC
	`

	queryFindMovieByExternalID = `SELECT id FROM movies WHERE tmdb_id = $1`

	// queryInsertMovie returns no rows when a concurrent insert won the race.
	queryInsertMovie = `
		INSERT INTO movies (tmdb_id, title, release_date, runtime, poster_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (tmdb_id) DO NOTHING
		RETURNING id
	`

	queryUpsertGenre = `
		INSERT INTO genres (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	queryInsertMovieGenre = `
		INSERT INTO movie_genres (movie_id, genre_id, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (movie_id, genre_id) DO NOTHING
	`

	// queryUpsertPerson keeps the first known profile image.
	queryUpsertPerson = `
		INSERT INTO people (name, profile_path)
		VALUES ($1, NULLIF($2, ''))
		ON CONFLICT (name) DO UPDATE
			SET profile_path = COALESCE(people.profile_path, EXCLUDED.profile_path)
		RETURNING id
	`

	queryInsertMoviePerson = `
		INSERT INTO movie_people (movie_id, person_id, role, position)
		VALUES ($1, $2, $3, $4)
	`

	queryListMoviesMissingRuntime = `
		SELECT id, tmdb_id, title, release_date, runtime, poster_path
		FROM movies
		WHERE runtime IS NULL AND tmdb_id IS NOT NULL AND id > $1
		ORDER BY id ASC
		LIMIT $2
	`

	queryUpdateRuntime = `
		UPDATE movies
		SET runtime = $2, updated_at = $3
		WHERE id = $1
	`
)
