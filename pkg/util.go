package pkg

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid day")

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir && !stat.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	if !isDir && stat.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// ParseDay parses a YYYY-MM-DD day in loc. An empty string means today.
func ParseDay(day string, now time.Time, loc *time.Location) (time.Time, error) {
	if day == "" {
		y, m, d := now.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	parsed, err := time.ParseInLocation(DayLayout, day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (expected YYYY-MM-DD)", ErrInvalidDay, day)
	}
	return parsed, nil
}

// DayBounds returns [midnight, next midnight) of the day t falls in.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 0, 1)
}
