package model

import (
	"fmt"

	"moviemania/internal/recordio"
)

// MovieID defines a catalog entry id. Ids are admin-assigned and unique
// among live movies; the catalog does not auto-increment.
type MovieID uint64

// Movie defines a single catalog entry.
type Movie struct {
	ID             MovieID `validate:"required"`
	Title          string  `validate:"required"`
	Year           int     `validate:"required,gt=0"`
	MainCast       string
	Rating         float64 `validate:"gte=0,lte=10"`
	Genre          string  `validate:"required"`
	Description    string
	CoverImagePath string
}

func (m *Movie) String() string {
	return fmt.Sprintf("Movie{id=%d, title=%s, year=%d, rating=%s, genre=%s}",
		m.ID, m.Title, m.Year, recordio.FormatFloat(m.Rating), m.Genre)
}

// MovieToRow encodes a movie as one delimited row in backing-file column
// order. Encoding never fails.
func MovieToRow(m *Movie) []string {
	return []string{
		recordio.FormatUint(uint64(m.ID)),
		m.Title,
		recordio.FormatInt(m.Year),
		m.MainCast,
		recordio.FormatFloat(m.Rating),
		m.Genre,
		m.Description,
		m.CoverImagePath,
	}
}

// MovieFromRow decodes one delimited row into a movie. line is the 1-based
// row position used in decode error reports.
func MovieFromRow(line int, row []string) (*Movie, error) {
	d := recordio.NewRowDecoder(line, row).Require(8)
	m := &Movie{
		ID:             MovieID(d.Uint(0)),
		Title:          d.String(1),
		Year:           d.Int(2),
		MainCast:       d.String(3),
		Rating:         d.Float(4),
		Genre:          d.String(5),
		Description:    d.String(6),
		CoverImagePath: d.String(7),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
