// Command zonebuild downloads the latest IANA time zone database, compiles
// it into a tz.Rules per zone identifier, and writes the result as a
// zone-rules binary file (see zonefile) for the runtime packages to load.
package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/civiltime/civiltime/tzdata"
	"github.com/civiltime/civiltime/tzdb/ianadist"
	"github.com/civiltime/civiltime/zonebuild"
	"github.com/civiltime/civiltime/zonefile"
)

func main() {
	out := flag.String("out", "zoneinfo.ctzf", "path to write the compiled zone-rules file to")
	horizon := flag.Int("horizon", time.Now().Year()+50, "last year a recurring rule falling back to explicit materialization is expanded through")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *out, *horizon); err != nil {
		logger.Fatal("zonebuild failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, outPath string, horizonYear int) error {
	ctx := context.Background()

	logger.Info("downloading tzdata release")
	release, _, err := ianadist.Latest(ctx, "")
	if err != nil {
		return err
	}
	logger.Info("downloaded tzdata release", zap.String("version", release.Version), zap.Int("files", len(release.DataFiles)))

	merged, err := mergeDataFiles(release.DataFiles)
	if err != nil {
		return err
	}
	logger.Info("parsed tzdata source",
		zap.Int("zone_lines", len(merged.ZoneLines)),
		zap.Int("rule_lines", len(merged.RuleLines)),
		zap.Int("link_lines", len(merged.LinkLines)),
	)

	result, err := zonebuild.Build(merged, horizonYear)
	if err != nil {
		return err
	}
	logger.Info("compiled zones", zap.Int("zones", len(result.Zones)), zap.Int("aliases", len(result.Aliases)))

	// Alias identifiers resolve to the same *tz.Rules as their canonical
	// zone so a single zone-rules file answers lookups for both.
	for alias, canonical := range result.Aliases {
		if r, ok := result.Zones[canonical]; ok {
			result.Zones[alias] = r
		} else {
			logger.Warn("link target not found", zap.String("alias", alias), zap.String("target", canonical))
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := zonefile.Encode(f, result.Zones); err != nil {
		return err
	}
	logger.Info("wrote zone-rules file", zap.String("path", outPath), zap.Int("zones", len(result.Zones)))
	return nil
}

// mergeDataFiles parses every tzdata source file in a release and
// concatenates their contents into a single tzdata.File, processing files
// in a stable order so a rebuild from the same release is reproducible.
func mergeDataFiles(files ianadist.TZDataFiles) (tzdata.File, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var merged tzdata.File
	for _, name := range names {
		parsed, err := tzdata.Parse(bytes.NewReader(files[name]))
		if err != nil {
			return tzdata.File{}, err
		}
		merged.ZoneLines = append(merged.ZoneLines, parsed.ZoneLines...)
		merged.RuleLines = append(merged.RuleLines, parsed.RuleLines...)
		merged.LinkLines = append(merged.LinkLines, parsed.LinkLines...)
		merged.LeapLines = append(merged.LeapLines, parsed.LeapLines...)
		merged.ExpiresLines = append(merged.ExpiresLines, parsed.ExpiresLines...)
	}
	return merged, nil
}
