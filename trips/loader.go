package trips

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/utils"
)

// Column headers in the bikeshare exports
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColDuration     = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var (
	// ErrUnknownCity is returned for a city missing from the loader's table
	ErrUnknownCity = errors.New("unknown city")
	// ErrMissingColumn is returned when a required column is absent from the header
	ErrMissingColumn = errors.New("missing column")
)

var requiredColumns = []string{ColStartTime, ColDuration, ColStartStation, ColEndStation, ColUserType}

// Loader reads city trip files from a data directory
type Loader struct {
	dataDir string
	files   map[string]string // city -> file name
	cache   *tableCache
}

// NewLoader creates a loader over an explicit city -> file table.
// Relative file names are resolved against dataDir.
func NewLoader(dataDir string, files map[string]string) *Loader {
	own := make(map[string]string, len(files))
	for city, f := range files {
		own[utils.Normalize(city)] = f
	}
	return &Loader{dataDir: dataDir, files: own, cache: newTableCache()}
}

// NewLoaderFromConfig creates a loader from the configured city table
func NewLoaderFromConfig(cfg config.AppConfig) *Loader {
	return NewLoader(cfg.DataDir, cfg.CityFiles())
}

// Cities returns the known city names, sorted
func (l *Loader) Cities() []string {
	names := make([]string, 0, len(l.files))
	for c := range l.files {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// HasCity reports whether city is in the loader's table
func (l *Loader) HasCity(city string) bool {
	_, ok := l.files[utils.Normalize(city)]
	return ok
}

// Path returns the file backing city
func (l *Loader) Path(city string) (string, error) {
	f, ok := l.files[utils.Normalize(city)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	if filepath.IsAbs(f) {
		return f, nil
	}
	return filepath.Join(l.dataDir, f), nil
}

// Load reads the city's full table and applies the month and day filters
func (l *Loader) Load(sel Selection) (*Table, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	full, err := l.LoadAll(sel.City)
	if err != nil {
		return nil, err
	}
	filtered, err := full.Apply(sel.Month, sel.Day)
	if err != nil {
		return nil, err
	}
	log.Printf("%s: %s of %s trips match month=%s day=%s",
		full.City, utils.Count(filtered.Len()), utils.Count(full.Len()), sel.Month, sel.Day)
	return filtered, nil
}

// LoadAll returns the city's full, unfiltered table. Each file is read once
// per loader.
func (l *Loader) LoadAll(city string) (*Table, error) {
	path, err := l.Path(city)
	if err != nil {
		return nil, err
	}
	city = utils.Normalize(city)
	return l.cache.get(city, path, func() (*Table, error) {
		return readFile(city, path)
	})
}

func readFile(city, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trips for %s: %w", city, err)
	}
	defer func() { _ = f.Close() }()

	t, err := ReadTable(city, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Printf("loaded %s trips for %s from %s", utils.Count(t.Len()), t.City, path)
	return t, nil
}

// ReadTable parses a trip CSV stream into a Table
func ReadTable(city string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx := makeIndex(header)
	for _, col := range requiredColumns {
		if _, ok := idx[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	schema := Schema{
		ID:        hasColumn(idx, ""),
		EndTime:   hasColumn(idx, ColEndTime),
		Gender:    hasColumn(idx, ColGender),
		BirthYear: hasColumn(idx, ColBirthYear),
	}

	var rows []Trip
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, parseTrip(len(rows), record, idx, schema))
	}
	return &Table{City: city, Schema: schema, trips: rows}, nil
}

func parseTrip(index int, record []string, idx map[string]int, schema Schema) Trip {
	tr := Trip{
		Index:        index,
		StartStation: getField(record, idx, ColStartStation),
		EndStation:   getField(record, idx, ColEndStation),
		UserType:     getField(record, idx, ColUserType),
	}
	if schema.ID {
		tr.ID = getField(record, idx, "")
	}
	if start, err := utils.ParseTimestamp(getField(record, idx, ColStartTime)); err == nil {
		tr.StartTime = start
		tr.Valid = true
	}
	if schema.EndTime {
		if end, err := utils.ParseTimestamp(getField(record, idx, ColEndTime)); err == nil {
			tr.EndTime = end
		}
	}
	if d, err := strconv.ParseFloat(getField(record, idx, ColDuration), 64); err == nil {
		tr.Duration = d
	}
	if schema.Gender {
		tr.Gender = getField(record, idx, ColGender)
	}
	if schema.BirthYear {
		if y, err := strconv.ParseFloat(getField(record, idx, ColBirthYear), 64); err == nil && !math.IsNaN(y) {
			tr.BirthYear = int(y)
			tr.HasBirthYear = true
		}
	}
	tr.derive()
	return tr
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

func hasColumn(idx map[string]int, col string) bool {
	_, ok := idx[strings.ToLower(col)]
	return ok
}

func getField(record []string, idx map[string]int, col string) string {
	i, ok := idx[strings.ToLower(col)]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
