// Package day02 sums the invalid product ids hidden in a list of ranges.
// Ranges are scanned in parallel; only the final sum is ordered.
package day02

import (
	"context"

	"github.com/Arinono/aoc-2025/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var Log = config.NewLogger()

const (
	chunkSize  = 1 << 16
	checkEvery = 1 << 12
)

type Predicate func(id uint64) bool

// Sum adds up every id in ranges for which pred holds. The ranges are cut
// into chunks that are scanned by at most config.Workers() goroutines.
func Sum(ctx context.Context, ranges []Range, pred Predicate) (uint64, error) {
	var chunks []Range
	for _, r := range ranges {
		chunks = append(chunks, r.chunks(chunkSize)...)
	}

	workers := config.Workers()
	log := Log.WithFields(logrus.Fields{
		"ranges": len(ranges), "chunks": len(chunks), "workers": workers,
	})
	log.Debug("scanning")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	sums := make([]uint64, len(chunks))
	for i, c := range chunks {
		g.Go(func() error {
			var sum uint64
			for id := c.First; ; id++ {
				if (id-c.First)%checkEvery == 0 {
					if err := gCtx.Err(); err != nil {
						return err
					}
				}
				if pred(id) {
					sum += id
				}
				if id == c.Last {
					break
				}
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Debug("scan aborted")
		return 0, err
	}

	var total uint64
	for _, s := range sums {
		total += s
	}
	return total, nil
}

func run(input string, pred Predicate) (uint64, error) {
	ranges, err := ParseRanges(input)
	if err != nil {
		return 0, err
	}
	return Sum(context.Background(), ranges, pred)
}

func PartOne(input string) (uint64, error) {
	return run(input, Doubled)
}

func PartTwo(input string) (uint64, error) {
	return run(input, Repeated)
}
