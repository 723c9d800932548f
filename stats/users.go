package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// BirthYearStats holds the earliest, most recent and most common birth year
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats holds user type and, where the city records them, gender and
// birth year breakdowns
type UserStats struct {
	UserTypes []Count[string]

	GenderAvailable bool
	Gender          []Count[string]

	BirthYearAvailable bool
	BirthYears         *BirthYearStats // nil when no trip has a birth year
}

func (UserStats) isResult() {}

// ComputeUserStats counts user types, genders and birth years. Empty cells
// are left out of every breakdown.
func ComputeUserStats(t *trips.Table) UserStats {
	us := UserStats{
		GenderAvailable:    t.Schema.Gender,
		BirthYearAvailable: t.Schema.BirthYear,
	}

	userTypes := NewCounter[string]()
	genders := NewCounter[string]()
	years := NewCounter[int]()
	var earliest, latest int
	for tr := range t.All() {
		if tr.UserType != "" {
			userTypes.Add(tr.UserType)
		}
		if us.GenderAvailable && tr.Gender != "" {
			genders.Add(tr.Gender)
		}
		if us.BirthYearAvailable && tr.HasBirthYear {
			if years.Len() == 0 || tr.BirthYear < earliest {
				earliest = tr.BirthYear
			}
			if years.Len() == 0 || tr.BirthYear > latest {
				latest = tr.BirthYear
			}
			years.Add(tr.BirthYear)
		}
	}

	us.UserTypes = userTypes.Counts()
	if us.GenderAvailable {
		us.Gender = genders.Counts()
	}
	if common, _, ok := years.Mode(); ok {
		us.BirthYears = &BirthYearStats{Earliest: earliest, MostRecent: latest, MostCommon: common}
	}
	return us
}
