// Package statistics summarises how one seat fares over many simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MaxSeats is the largest table a game can seat.
const MaxSeats = 10

// GameRecord is the outcome of one simulated game for the tracked seat
type GameRecord struct {
	NetChips  int   // Final stack minus starting stack
	Seed      int64 // Seed of the game, for replay
	Seat      int   // Tracked player's seat (1-10)
	Rounds    int   // Rounds played before the game ended
	Showdowns int   // Rounds the tracked player took to showdown
	Busted    bool  // Tracked player was eliminated
}

// SeatStats tracks results for one seat
type SeatStats struct {
	Games   int
	SumNet  float64
	SumNet2 float64
}

// Statistics accumulates net chips per game for the tracked seat
type Statistics struct {
	Games   int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Every game's net chips, for median and percentiles

	Wins   int // Games finished with more chips than started
	Losses int // Games finished with fewer chips than started
	Busts  int // Games in which the tracked player was eliminated

	Rounds      int
	Showdowns   int
	LongestGame int
	SeatResults [MaxSeats + 1]SeatStats // Index 0 unused
}

// Mean returns the mean net chips per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumNet / float64(s.Games)
}

// Variance returns the sample variance of net chips per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates one game
func (s *Statistics) Add(record GameRecord) {
	net := float64(record.NetChips)
	s.Games++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	switch {
	case record.NetChips > 0:
		s.Wins++
	case record.NetChips < 0:
		s.Losses++
	}
	if record.Busted {
		s.Busts++
	}

	s.Rounds += record.Rounds
	s.Showdowns += record.Showdowns
	if record.Rounds > s.LongestGame {
		s.LongestGame = record.Rounds
	}

	if seat := record.Seat; seat >= 1 && seat <= MaxSeats {
		s.SeatResults[seat].Games++
		s.SeatResults[seat].SumNet += net
		s.SeatResults[seat].SumNet2 += net * net
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Busts += other.Busts
	s.Rounds += other.Rounds
	s.Showdowns += other.Showdowns
	s.LongestGame = max(s.LongestGame, other.LongestGame)
	for i := range s.SeatResults {
		s.SeatResults[i].Games += other.SeatResults[i].Games
		s.SeatResults[i].SumNet += other.SeatResults[i].SumNet
		s.SeatResults[i].SumNet2 += other.SeatResults[i].SumNet2
	}
}

// Median returns the median net chips per game
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean result for a seat (1-10)
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 1 || seat > MaxSeats {
		return 0
	}
	ss := s.SeatResults[seat]
	if ss.Games == 0 {
		return 0
	}
	return ss.SumNet / float64(ss.Games)
}

// Validate checks the accumulated counts agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)", len(s.Values), s.Games)
	}
	if s.Wins+s.Losses > s.Games {
		return fmt.Errorf("wins (%d) and losses (%d) exceed games (%d)", s.Wins, s.Losses, s.Games)
	}
	if s.Busts > s.Losses {
		return fmt.Errorf("busts (%d) exceed losses (%d)", s.Busts, s.Losses)
	}

	seatGames := 0
	for seat := 1; seat <= MaxSeats; seat++ {
		seatGames += s.SeatResults[seat].Games
	}
	if seatGames != s.Games {
		return fmt.Errorf("seat games total (%d) does not match games count (%d)", seatGames, s.Games)
	}
	return nil
}
