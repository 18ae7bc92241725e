package simulator

import (
	"fmt"
	"io"

	"github.com/lox/drawpoker/poker"
)

// WriteSummary prints a human-readable report of r.
func WriteSummary(w io.Writer, r *Results) error {
	p := &summaryPrinter{w: w}
	stats := r.Hero

	p.printf("\n=== SIMULATION RESULTS ===\n")
	p.printf("Games played: %d\n", r.Games)
	p.printf("Rounds played: %d (%.1f per game)\n", r.Rounds, ratio(r.Rounds, r.Games))

	p.printf("\n=== ROUND OUTCOMES ===\n")
	p.printf("Showdowns: %d (%.1f%%)\n", r.Showdowns, pct(r.Showdowns, r.Rounds))
	p.printf("Won by default: %d (%.1f%%)\n", r.WonByDefault, pct(r.WonByDefault, r.Rounds))
	p.printf("Forfeited pots: %d\n", r.Forfeited)
	p.printf("Split pots: %d\n", r.SplitPots)
	p.printf("Chips dropped: %d\n", r.ChipsDropped)

	p.printf("\n=== SHOWDOWN HANDS ===\n")
	shown := 0
	for _, n := range r.Categories {
		shown += n
	}
	for rank := poker.RoyalFlush; rank >= poker.HighCard; rank-- {
		p.printf("%-16s %7d shown (%5.2f%%) %7d won\n", rank.String()+":", r.Categories[rank], pct(r.Categories[rank], shown), r.Winning[rank])
	}

	if stats.Games > 0 {
		low, high := stats.ConfidenceInterval95()
		p.printf("\n=== HERO RESULTS ===\n")
		p.printf("Mean: %.2f chips/game\n", stats.Mean())
		p.printf("Median: %.2f chips/game\n", stats.Median())
		p.printf("Std Dev: %.2f chips\n", stats.StdDev())
		p.printf("95%% CI: [%.2f, %.2f] chips/game\n", low, high)
		p.printf("Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
			stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
		p.printf("Won %d, lost %d, busted %d of %d games\n", stats.Wins, stats.Losses, stats.Busts, stats.Games)
		p.printf("Showdowns reached: %d\n", stats.Showdowns)

		p.printf("\n=== SEAT ANALYSIS ===\n")
		for seat := 1; seat < len(stats.SeatResults); seat++ {
			if ss := stats.SeatResults[seat]; ss.Games > 0 {
				p.printf("Seat %d: %d games, %.2f chips/game\n", seat, ss.Games, stats.SeatMean(seat))
			}
		}
	}
	return p.err
}

// summaryPrinter remembers the first write error so callers check once.
type summaryPrinter struct {
	w   io.Writer
	err error
}

func (p *summaryPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func pct(n, d int) float64 {
	return ratio(n, d) * 100
}
