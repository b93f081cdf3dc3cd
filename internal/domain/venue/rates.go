package venue

import (
	"errors"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrInvalidRateTable = errors.New("rate table rates must be positive")

// RateTable prices a session: cents per lane per hour, with a higher rate
// on Friday and Saturday. Loaded once at startup from a TOML file.
type RateTable struct {
	WeekdayHourCents int64 `toml:"weekday_hour_cents"`
	WeekendHourCents int64 `toml:"weekend_hour_cents"`
}

func LoadRateTable(path string) (*RateTable, error) {
	var rt RateTable
	if _, err := toml.DecodeFile(path, &rt); err != nil {
		return nil, err
	}
	if err := rt.Validate(); err != nil {
		return nil, err
	}
	return &rt, nil
}

func DefaultRateTable() *RateTable {
	return &RateTable{
		WeekdayHourCents: 1500,
		WeekendHourCents: 1800,
	}
}

func (rt *RateTable) Validate() error {
	if rt.WeekdayHourCents <= 0 || rt.WeekendHourCents <= 0 {
		return ErrInvalidRateTable
	}
	return nil
}

// Amount is the deterministic estimate for a session: rate x hours x lanes,
// rounded down to whole cents.
func (rt *RateTable) Amount(date time.Time, durationMinutes, lanes int) int64 {
	rate := rt.WeekdayHourCents
	if wd := date.Weekday(); wd == time.Friday || wd == time.Saturday {
		rate = rt.WeekendHourCents
	}
	return rate * int64(durationMinutes) * int64(lanes) / 60
}
