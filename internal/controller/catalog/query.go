package catalog

import (
	"strconv"
	"strings"

	"moviemania/pkg/model"
)

// GenreAll is the genre value meaning no genre constraint.
const GenreAll = "All"

// Criteria defines the recognized search filters. Zero values impose no
// constraint; provided filters are ANDed together.
type Criteria struct {
	// Genre matches when the movie genre contains it, case-insensitively.
	// Empty or GenreAll means any genre.
	Genre string
	// Year matches the movie's release year exactly, as decimal text.
	Year string
	// MinRating keeps movies rated at or above it.
	MinRating float64
	// Title matches when the movie title contains it, case-insensitively.
	Title string
}

func (c Criteria) matches(m *model.Movie) bool {
	if c.Genre != "" && c.Genre != GenreAll &&
		!strings.Contains(strings.ToLower(m.Genre), strings.ToLower(c.Genre)) {
		return false
	}
	if c.Year != "" && strconv.Itoa(m.Year) != c.Year {
		return false
	}
	if m.Rating < c.MinRating {
		return false
	}
	if c.Title != "" &&
		!strings.Contains(strings.ToLower(m.Title), strings.ToLower(c.Title)) {
		return false
	}
	return true
}

// Filter returns the movies matching all criteria, preserving input order.
// It is a pure function: the input slice is never modified.
func Filter(movies []model.Movie, c Criteria) []model.Movie {
	out := make([]model.Movie, 0, len(movies))
	for i := range movies {
		if c.matches(&movies[i]) {
			out = append(out, movies[i])
		}
	}
	return out
}
