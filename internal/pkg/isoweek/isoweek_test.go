package isoweek

import (
	"testing"
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentWeekInfo(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want model.WeekInfo
	}{
		{
			// Pinned production fixture.
			name: "mid May 2023",
			now:  time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
			want: model.WeekInfo{Year: 2023, Week: 20},
		},
		{
			name: "year starting on Monday",
			now:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want: model.WeekInfo{Year: 2024, Week: 2},
		},
		{
			name: "first day of a Sunday-starting year",
			now:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			want: model.WeekInfo{Year: 2023, Week: 2},
		},
		{
			// The formula can run past 53 at the end of a year; strict
			// ISO-8601 would call this 2023-W52. Longstanding deviation,
			// kept on purpose.
			name: "last day of a Sunday-starting year",
			now:  time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
			want: model.WeekInfo{Year: 2023, Week: 54},
		},
		{
			name: "non-UTC instants are normalized",
			now:  time.Date(2023, 5, 10, 9, 0, 0, 0, time.FixedZone("KST", 9*3600)),
			want: model.WeekInfo{Year: 2023, Week: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentWeekInfo(tt.now))
		})
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		week      int
		wantStart string
		wantEnd   string
	}{
		// Pinned production fixture.
		{"2023 week 20", 2023, 20, "2023-05-15", "2023-05-21"},
		// Jan 4 anchors week 1 even when it falls mid-week.
		{"2023 week 1", 2023, 1, "2023-01-02", "2023-01-08"},
		{"2024 week 1", 2024, 1, "2024-01-01", "2024-01-07"},
		// 2021 started on a Friday; Jan 1-3 fall outside week 1.
		{"2021 week 1", 2021, 1, "2021-01-04", "2021-01-10"},
		{"2020 week 53", 2020, 53, "2020-12-28", "2021-01-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Range(tt.year, tt.week)

			assert.Equal(t, tt.year, r.Year)
			assert.Equal(t, tt.week, r.Week)
			assert.Equal(t, tt.wantStart, r.Start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, r.End.Format("2006-01-02"))
		})
	}
}

func TestRangeSpansSevenDays(t *testing.T) {
	for year := 2019; year <= 2026; year++ {
		for _, week := range []int{1, 2, 20, 52, 53} {
			r := Range(year, week)

			assert.Equal(t, time.Monday, r.Start.Weekday(), "%v week %v", year, week)
			assert.Equal(t, r.Start.AddDate(0, 0, 6), r.End, "%v week %v", year, week)
		}
	}
}

// The current-week formula and the Jan-4 range anchor are two different week
// numberings. They coincide for years starting on Monday and drift otherwise:
// for 2023-05-10 the formula reports week 20 while Range(2023, 20) spans
// May 15-21. Known deviation from strict ISO-8601, asserted here so nobody
// "fixes" one side silently.
func TestWeekNumberingDeviation(t *testing.T) {
	now := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
	info := CurrentWeekInfo(now)
	r := Range(info.Year, info.Week)

	assert.True(t, r.Start.After(now))

	// Agreement case: 2024 starts on a Monday.
	now = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	info = CurrentWeekInfo(now)
	r = Range(info.Year, info.Week)

	assert.False(t, now.Before(r.Start))
	assert.False(t, now.After(r.End.Add(24*time.Hour)))
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		label string
		want  Weekday
	}{
		{"월", Monday},
		{"화요일", Tuesday},
		{"수", Wednesday},
		{"목", Thursday},
		{"금요일", Friday},
		{"토", Saturday},
		{"일", Sunday},
		{"sunday", Sunday},
		{"Monday", Monday},
		{" 토 ", Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseWeekday(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeekdayUnknownLabel(t *testing.T) {
	for _, label := range []string{"", "주말", "funday", "mon"} {
		_, err := ParseWeekday(label)
		assert.ErrorIs(t, err, model.ErrUnknownWeekday, "label %q", label)
	}
}

func TestDateFromWeekAndDay(t *testing.T) {
	d, err := DateFromWeekAndDay(2023, 20, "토")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC), d)

	d, err = DateFromWeekAndDay(2023, 20, "월")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestDateFromWeekAndDayStaysInWeek(t *testing.T) {
	labels := []string{"월", "화", "수", "목", "금", "토", "일"}

	for year := 2020; year <= 2025; year++ {
		for _, week := range []int{1, 15, 35, 52} {
			r := Range(year, week)
			for _, label := range labels {
				d, err := DateFromWeekAndDay(year, week, label)
				require.NoError(t, err)

				assert.False(t, d.Before(r.Start), "%v week %v %v", year, week, label)
				assert.False(t, d.After(r.End), "%v week %v %v", year, week, label)
			}
		}
	}
}
