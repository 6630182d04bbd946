package games

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Columns is the header expected in a combined games CSV. Extra columns are ignored.
var Columns = []string{
	"id", "name", "date", "reviews", "plays", "playing", "backlogs",
	"wishlists", "developer", "genre", "platform", "final_rating",
}

// LoadStats counts what happened while decoding a file.
type LoadStats struct {
	Rows    int
	Loaded  int
	Skipped int
}

// LoadCSV opens path and decodes it with Decode.
func LoadCSV(path string, logger *slog.Logger) ([]Record, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Decode(f, logger)
}

// Decode reads a header line followed by data rows. A row that cannot be decoded
// is logged and skipped; only header and I/O failures are returned.
func Decode(r io.Reader, logger *slog.Logger) ([]Record, LoadStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var st LoadStats
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, st, nil
		}
		return nil, st, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, st, err
	}

	var out []Record
	for {
		row, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, st, fmt.Errorf("read row %d: %w", st.Rows+1, err)
			}
			st.Rows++
			st.Skipped++
			logger.Warn("skipping malformed row", "row", st.Rows, "error", err)
			continue
		}
		st.Rows++
		rec, err := decodeRow(row, idx)
		if err != nil {
			st.Skipped++
			logger.Warn("skipping malformed row", "row", st.Rows, "error", err)
			continue
		}
		out = append(out, rec)
	}
	st.Loaded = len(out)
	return out, st, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func decodeRow(row []string, idx map[string]int) (Record, error) {
	var (
		rec Record
		err error
	)
	get := func(col string) string { return row[idx[col]] }
	count := func(col string) int {
		if err != nil {
			return 0
		}
		v, e := strconv.ParseUint(strings.TrimSpace(get(col)), 10, 32)
		if e != nil {
			err = fmt.Errorf("field %s: %w", col, e)
			return 0
		}
		return int(v)
	}

	rec.ID = get("id")
	rec.Name = get("name")
	rec.Date = get("date")
	rec.Reviews = count("reviews")
	rec.Plays = count("plays")
	rec.Playing = count("playing")
	rec.Backlogs = count("backlogs")
	rec.Wishlists = count("wishlists")
	rec.Developer = get("developer")
	rec.Genre = get("genre")
	rec.Platform = get("platform")
	if err != nil {
		return Record{}, err
	}
	rating, e := strconv.ParseFloat(strings.TrimSpace(get("final_rating")), 64)
	if e != nil {
		return Record{}, fmt.Errorf("field final_rating: %w", e)
	}
	rec.FinalRating = rating
	return rec, nil
}
