package cases

import (
	"testing"
	"time"

	"ecourts-scraper/internal/components/chrono"

	"github.com/stretchr/testify/require"
)

func TestResolveExplicitIsIdentity(t *testing.T) {
	clock := chrono.NewFixedImpl(time.Date(2024, time.May, 17, 10, 0, 0, 0, time.UTC))

	for _, date := range []string{"05-06-2025", "2025/06/05", "not a date", ""} {
		require.Equal(t, CanonicalDate(date), Resolve(clock, Explicit(date)))
	}
}

func TestResolveTomorrowIsTodayPlusOne(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		now      time.Time
		today    CanonicalDate
		tomorrow CanonicalDate
	}{
		{
			now:      time.Date(2024, time.May, 17, 9, 0, 0, 0, ist),
			today:    "17-05-2024",
			tomorrow: "18-05-2024",
		},
		{
			now:      time.Date(2024, time.May, 31, 23, 59, 59, 0, ist),
			today:    "31-05-2024",
			tomorrow: "01-06-2024",
		},
		{
			now:      time.Date(2023, time.December, 31, 0, 0, 0, 0, ist),
			today:    "31-12-2023",
			tomorrow: "01-01-2024",
		},
		{
			now:      time.Date(2024, time.February, 28, 12, 0, 0, 0, ist),
			today:    "28-02-2024",
			tomorrow: "29-02-2024",
		},
	}

	for _, test := range testCases {
		clock := chrono.NewFixedImpl(test.now)
		today := Resolve(clock, Today)
		tomorrow := Resolve(clock, Tomorrow)
		require.Equal(t, test.today, today)
		require.Equal(t, test.tomorrow, tomorrow)

		parsed, err := time.ParseInLocation(CanonicalLayout, string(today), ist)
		require.NoError(t, err)
		require.Equal(t, string(tomorrow), parsed.AddDate(0, 0, 1).Format(CanonicalLayout))
	}
}

func TestParseDateSelector(t *testing.T) {
	require.Equal(t, Today, ParseDateSelector("today"))
	require.Equal(t, Tomorrow, ParseDateSelector("tomorrow"))
	require.Equal(t, Explicit("01-01-2025"), ParseDateSelector("01-01-2025"))
	require.Equal(t, "tomorrow", Tomorrow.String())
}

func TestCompactDate(t *testing.T) {
	require.Equal(t, "17052024", CompactDate("17-05-2024"))
	require.Equal(t, "17052024", CompactDate("17/05/2024"))
	require.Equal(t, "garbage", CompactDate("garbage"))
}
