package slot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"garage/internal/domains/schedule/slot"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "morning", value: "08:00", want: 480},
		{name: "afternoon", value: "13:30", want: 810},
		{name: "end of day", value: "23:59", want: 1439},
		{name: "garbage", value: "25:99", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slot.ParseClock(tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", slot.FormatClock(0))
	assert.Equal(t, "08:30", slot.FormatClock(510))
	assert.Equal(t, "17:00", slot.FormatClock(1020))
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2026, 9, 14, 10, 45, 0, 0, time.UTC)
	assert.Equal(t, 645, slot.MinuteOfDay(at))
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name        string
		open        int
		closing     int
		granularity int
		want        []int
	}{
		{
			name:        "morning window 30-min grid",
			open:        480,
			closing:     720,
			granularity: 30,
			want:        []int{480, 510, 540, 570, 600, 630, 660, 690},
		},
		{
			name:        "single slot",
			open:        480,
			closing:     500,
			granularity: 30,
			want:        []int{480},
		},
		{
			name:        "empty window",
			open:        720,
			closing:     720,
			granularity: 30,
			want:        nil,
		},
		{
			name:        "zero granularity",
			open:        480,
			closing:     720,
			granularity: 0,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Grid(tt.open, tt.closing, tt.granularity))
		})
	}
}

func TestFits(t *testing.T) {
	// 11:00 + 60 min ends exactly at the 12:00 close.
	assert.True(t, slot.Fits(660, 60, 720))
	// 11:30 + 60 min runs past the close.
	assert.False(t, slot.Fits(690, 60, 720))
}

func TestOverlaps(t *testing.T) {
	existing := slot.Interval{Start: 600, End: 660} // 10:00-11:00

	tests := []struct {
		name      string
		candidate slot.Interval
		buffer    int
		want      bool
	}{
		{
			name:      "inside buffered window conflicts",
			candidate: slot.Interval{Start: 665, End: 725}, // 11:05-12:05
			buffer:    15,
			want:      true,
		},
		{
			name:      "past buffered window is free",
			candidate: slot.Interval{Start: 680, End: 740}, // 11:20-12:20
			buffer:    15,
			want:      false,
		},
		{
			name:      "exact overlap",
			candidate: slot.Interval{Start: 600, End: 660},
			buffer:    0,
			want:      true,
		},
		{
			name:      "adjacent without buffer is free",
			candidate: slot.Interval{Start: 660, End: 720},
			buffer:    0,
			want:      false,
		},
		{
			name:      "adjacent before without buffer is free",
			candidate: slot.Interval{Start: 540, End: 600},
			buffer:    0,
			want:      false,
		},
		{
			name:      "buffer extends backwards too",
			candidate: slot.Interval{Start: 530, End: 590}, // 08:50-09:50 vs 09:45 buffered start
			buffer:    15,
			want:      true,
		},
		{
			name:      "zero-length candidate inside",
			candidate: slot.Interval{Start: 630, End: 630},
			buffer:    0,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.candidate, existing, tt.buffer))
		})
	}
}

func TestConflictsAny(t *testing.T) {
	busy := []slot.Interval{
		{Start: 600, End: 660},
		{Start: 840, End: 900},
	}

	assert.True(t, slot.ConflictsAny(slot.NewInterval(665, 60), busy, 15))
	assert.False(t, slot.ConflictsAny(slot.NewInterval(680, 60), busy, 15))
	assert.True(t, slot.ConflictsAny(slot.NewInterval(830, 60), busy, 15))
	assert.False(t, slot.ConflictsAny(slot.NewInterval(480, 60), busy, 15))
}

func TestFromTimes(t *testing.T) {
	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, slot.Interval{Start: 600, End: 660}, slot.FromTimes(start, end))
}
