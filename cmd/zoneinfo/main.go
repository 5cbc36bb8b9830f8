// Command zoneinfo prints the decoded contents of a zone-rules binary file
// (see zonefile) for a given zone identifier: its fixed offset, or its
// standard/savings transition history and recurring tail rules.
package main

import (
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/civiltime/civiltime/tz"
	"github.com/civiltime/civiltime/zonefile"
)

func main() {
	zoneID := flag.String("zone", "", "zone identifier to print (all zones if empty)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) != 1 {
		logger.Fatal("usage: zoneinfo [-zone ID] <zone-rules file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		logger.Fatal("opening file", zap.Error(err))
	}
	defer f.Close()

	zones, err := zonefile.Decode(f)
	if err != nil {
		logger.Fatal("decoding zone-rules file", zap.Error(err))
	}

	if *zoneID != "" {
		r, ok := zones[*zoneID]
		if !ok {
			logger.Fatal("zone not found", zap.String("zone", *zoneID))
		}
		printZone(logger, *zoneID, r)
		return
	}

	for id, r := range zones {
		printZone(logger, id, r)
	}
}

func printZone(logger *zap.Logger, id string, r *tz.Rules) {
	if r.IsFixedOffset() {
		logger.Info("zone", zap.String("id", id), zap.String("offset", r.FixedOffset().String()))
		return
	}

	std := r.StandardTransitionRecords()
	sav := r.SavingsTransitionRecords()
	last := r.LastRules()

	logger.Info("zone",
		zap.String("id", id),
		zap.Int("standard_transitions", len(std)),
		zap.Int("savings_transitions", len(sav)),
		zap.Int("last_rules", len(last)),
	)
	for _, t := range std {
		logger.Info("standard transition",
			zap.String("id", id),
			zap.Time("at", time.Unix(t.EpochSecond, 0).UTC()),
			zap.String("before", t.Before.String()),
			zap.String("after", t.After.String()),
		)
	}
	for _, t := range sav {
		logger.Info("savings transition",
			zap.String("id", id),
			zap.Time("at", time.Unix(t.EpochSecond, 0).UTC()),
			zap.String("before", t.Before.String()),
			zap.String("after", t.After.String()),
		)
	}
	for i, tr := range last {
		logger.Info("last rule",
			zap.String("id", id),
			zap.Int("index", i),
			zap.Int("month", tr.Month),
			zap.Int("day_of_month_indicator", tr.DayOfMonthIndicator),
			zap.Bool("has_dow", tr.HasDOW),
			zap.String("standard_offset", tr.StandardOffset.String()),
			zap.String("offset_before", tr.OffsetBefore.String()),
			zap.String("offset_after", tr.OffsetAfter.String()),
		)
	}
}
