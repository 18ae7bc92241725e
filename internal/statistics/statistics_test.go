package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.5))
	assert.Error(t, stats.Validate())
}

func TestStatisticsSingleGame(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(GameRecord{NetChips: 25, Seed: 12345, Seat: 3, Rounds: 7, Showdowns: 2})

	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 25.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 25.0, stats.Median())
	assert.Equal(t, 1, stats.Wins)
	assert.Zero(t, stats.Losses)
	assert.Equal(t, 7, stats.Rounds)
	assert.Equal(t, 2, stats.Showdowns)
	assert.Equal(t, 25.0, stats.SeatMean(3))
	require.NoError(t, stats.Validate())
}

func TestStatisticsMultipleGames(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	records := []GameRecord{
		{NetChips: 10, Seat: 1, Rounds: 4},
		{NetChips: -20, Seat: 2, Rounds: 9},
		{NetChips: 30, Seat: 1, Rounds: 3},
		{NetChips: 0, Seat: 2, Rounds: 5},
		{NetChips: -100, Seat: 1, Rounds: 12, Busted: true},
	}
	for _, r := range records {
		stats.Add(r)
	}

	assert.Equal(t, 5, stats.Games)
	assert.InDelta(t, -16.0, stats.Mean(), 1e-9)
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 2, stats.Losses)
	assert.Equal(t, 1, stats.Busts)
	assert.Equal(t, 12, stats.LongestGame)
	assert.Equal(t, 33, stats.Rounds)
	assert.InDelta(t, -20.0, stats.SeatMean(1), 1e-9)
	assert.InDelta(t, -10.0, stats.SeatMean(2), 1e-9)
	assert.Zero(t, stats.SeatMean(0))
	assert.Zero(t, stats.SeatMean(11))
	require.NoError(t, stats.Validate())
}

func TestStatisticsVarianceAndInterval(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	for _, v := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		stats.Add(GameRecord{NetChips: v, Seat: 1})
	}

	// Sample variance of the classic example set is 32/7.
	assert.InDelta(t, 32.0/7.0, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), stats.StdDev(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
	assert.InDelta(t, stats.Mean(), (low+high)/2, 1e-9)
}

func TestStatisticsPercentiles(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	for i := 1; i <= 5; i++ {
		stats.Add(GameRecord{NetChips: i * 10, Seat: 1})
	}

	assert.Equal(t, 10.0, stats.Percentile(0))
	assert.Equal(t, 30.0, stats.Percentile(0.5))
	assert.Equal(t, 50.0, stats.Percentile(1))
	assert.Equal(t, 20.0, stats.Percentile(0.25))
	assert.InDelta(t, 15.0, stats.Percentile(0.125), 1e-9)
}

func TestStatisticsMerge(t *testing.T) {
	t.Parallel()
	a, b, all := &Statistics{}, &Statistics{}, &Statistics{}
	records := []GameRecord{
		{NetChips: 10, Seat: 1, Rounds: 3},
		{NetChips: -5, Seat: 2, Rounds: 8},
		{NetChips: 40, Seat: 3, Rounds: 2, Showdowns: 1},
		{NetChips: -100, Seat: 2, Rounds: 15, Busted: true},
	}
	for i, r := range records {
		all.Add(r)
		if i%2 == 0 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}

	a.Merge(b)
	assert.Equal(t, all.Games, a.Games)
	assert.InDelta(t, all.Mean(), a.Mean(), 1e-9)
	assert.InDelta(t, all.Variance(), a.Variance(), 1e-9)
	assert.Equal(t, all.Median(), a.Median())
	assert.Equal(t, all.LongestGame, a.LongestGame)
	assert.Equal(t, all.SeatResults, a.SeatResults)
	assert.Equal(t, all.Busts, a.Busts)
	require.NoError(t, a.Validate())
}

func TestStatisticsValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Statistics)
		wantErr string
	}{
		{name: "values mismatch", mutate: func(s *Statistics) { s.Values = s.Values[:1] }, wantErr: "values array length"},
		{name: "too many wins", mutate: func(s *Statistics) { s.Wins = 5 }, wantErr: "exceed games"},
		{name: "busts without losses", mutate: func(s *Statistics) { s.Busts = 3 }, wantErr: "busts"},
		{name: "seat mismatch", mutate: func(s *Statistics) { s.SeatResults[4].Games = 1 }, wantErr: "seat games total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stats := &Statistics{}
			stats.Add(GameRecord{NetChips: 5, Seat: 1})
			stats.Add(GameRecord{NetChips: -5, Seat: 2})
			require.NoError(t, stats.Validate())

			tt.mutate(stats)
			assert.ErrorContains(t, stats.Validate(), tt.wantErr)
		})
	}
}
