// Command zonediff compares two zone-rules binary files (see zonefile) and
// reports zones added, removed, or changed between them.
package main

import (
	"flag"
	"os"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/civiltime/civiltime/tz"
	"github.com/civiltime/civiltime/zonefile"
)

func main() {
	flag.Parse()
	args := flag.Args()

	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if len(args) != 2 {
		logger.Fatal("usage: zonediff <zone-rules file A> <zone-rules file B>")
	}

	a, err := decode(args[0])
	if err != nil {
		logger.Fatal("decoding A", zap.Error(err))
	}
	b, err := decode(args[1])
	if err != nil {
		logger.Fatal("decoding B", zap.Error(err))
	}

	changed := 0
	for id, ar := range a {
		br, ok := b[id]
		if !ok {
			logger.Info("removed", zap.String("zone", id))
			changed++
			continue
		}
		if diff := diffRules(ar, br); diff != "" {
			logger.Info("changed", zap.String("zone", id), zap.String("diff", diff))
			changed++
		}
	}
	for id := range b {
		if _, ok := a[id]; !ok {
			logger.Info("added", zap.String("zone", id))
			changed++
		}
	}

	if changed == 0 {
		logger.Info("no differences")
	}
}

func decode(path string) (map[string]*tz.Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return zonefile.Decode(f)
}

func diffRules(a, b *tz.Rules) string {
	if a.IsFixedOffset() != b.IsFixedOffset() {
		return "fixed-offset status differs"
	}
	if a.IsFixedOffset() {
		if a.FixedOffset() != b.FixedOffset() {
			return cmp.Diff(a.FixedOffset().String(), b.FixedOffset().String())
		}
		return ""
	}
	return cmp.Diff(
		[3]any{a.StandardTransitionRecords(), a.SavingsTransitionRecords(), a.LastRules()},
		[3]any{b.StandardTransitionRecords(), b.SavingsTransitionRecords(), b.LastRules()},
	)
}
