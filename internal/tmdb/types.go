package tmdb

import (
	"strings"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
)

type movieDetails struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Runtime     *int    `json:"runtime"`
	PosterPath  string  `json:"poster_path"`
	Genres      []genre `json:"genres"`
	Credits     credits `json:"credits"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type credits struct {
	Cast []castMember `json:"cast"`
	Crew []crewMember `json:"crew"`
}

type castMember struct {
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type crewMember struct {
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

func (d *movieDetails) toMovie() *v1.Movie {
	m := &v1.Movie{
		ExternalID:  d.ID,
		Title:       d.Title,
		ReleaseDate: d.ReleaseDate,
		PosterPath:  d.PosterPath,
		Genres:      make([]string, 0, len(d.Genres)),
		Credits:     make([]v1.Credit, 0),
	}
	if d.Runtime != nil && *d.Runtime > 0 {
		m.RuntimeMinutes = v1.IntPtr(*d.Runtime)
	}

	for _, g := range d.Genres {
		if name := strings.TrimSpace(g.Name); name != "" {
			m.Genres = append(m.Genres, name)
		}
	}
	for _, crew := range d.Credits.Crew {
		if crew.Job != "Director" || strings.TrimSpace(crew.Name) == "" {
			continue
		}
		m.Credits = append(m.Credits, v1.Credit{
			PersonName:  crew.Name,
			Role:        v1.RoleDirector,
			ProfilePath: crew.ProfilePath,
		})
	}
	for _, cast := range d.Credits.Cast {
		if strings.TrimSpace(cast.Name) == "" {
			continue
		}
		m.Credits = append(m.Credits, v1.Credit{
			PersonName:  cast.Name,
			Role:        v1.RoleCast,
			ProfilePath: cast.ProfilePath,
		})
	}
	return m
}
