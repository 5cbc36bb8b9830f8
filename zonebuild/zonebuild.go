// Package zonebuild materializes a tz.Rules offset history per zone from a
// parsed IANA tzdata source (tzdata.File), the offline compiler that
// ingests raw IANA tz source text and produces the binary zone-rules file
// the runtime packages load (via zonefile.Encode).
//
// This is a deliberately scoped compiler, not a zic replacement: it tracks
// each zone's wall-clock offset history and a recurring tail for its final
// era, but does not reproduce zic's abbreviation strings (the zone-rules
// file format has no field for them) or its historical LMT-precision
// openings before a zone's first named rule set. See DESIGN.md for the
// full list of simplifications.
package zonebuild

import (
	"fmt"
	"sort"
	"time"

	"github.com/civiltime/civiltime/civil"
	"github.com/civiltime/civiltime/internal/tzexpand"
	"github.com/civiltime/civiltime/internal/unixtime"
	"github.com/civiltime/civiltime/tz"
	"github.com/civiltime/civiltime/tzdata"
)

// Result is the output of Build: the materialized zone registry plus the
// identifier aliases contributed by the source file's Link lines.
type Result struct {
	Zones map[string]*tz.Rules
	// Aliases maps an alias identifier to the canonical zone identifier it
	// should resolve to (tzdata Link TARGET LINK-NAME: LinkLine.To is the
	// alias, LinkLine.From is the canonical name).
	Aliases map[string]string
}

// tailYears is the length of the window of years, ending at horizonYear,
// over which zonebuild expands a perpetual rule it cannot express as a tz.TransitionRule (a DayFormBefore rule,
// which needs backward-from-a-fixed-day search that TransitionRule's
// forward/backward-from-sign-of-indicator model cannot represent).
const tailYears = 60

// Build materializes every zone named in f into a tz.Rules, and collects
// its Link lines into an alias table. horizonYear bounds explicit
// occurrence expansion for perpetual rules that fall back to per-year
// materialization instead of a recurring tz.TransitionRule tail.
func Build(f tzdata.File, horizonYear int) (Result, error) {
	rulesByName := make(map[string][]tzdata.RuleLine)
	for _, rl := range f.RuleLines {
		rulesByName[rl.Name] = append(rulesByName[rl.Name], rl)
	}

	eras := groupZoneLines(f.ZoneLines)

	zones := make(map[string]*tz.Rules, len(eras))
	for name, chain := range eras {
		r, err := buildZone(chain, rulesByName, horizonYear)
		if err != nil {
			return Result{}, fmt.Errorf("zonebuild: zone %q: %w", name, err)
		}
		zones[name] = r
	}

	aliases := make(map[string]string, len(f.LinkLines))
	for _, link := range f.LinkLines {
		aliases[link.To] = link.From
	}

	return Result{Zones: zones, Aliases: aliases}, nil
}

// groupZoneLines splits a flat ZoneLine list into per-zone continuation
// chains: each Name line starts a new chain that subsequent Continuation
// lines are appended to, exactly mirroring how tzdata source lays them out.
func groupZoneLines(lines []tzdata.ZoneLine) map[string][]tzdata.ZoneLine {
	out := make(map[string][]tzdata.ZoneLine)
	var current string
	for _, zl := range lines {
		if !zl.Continuation {
			current = zl.Name
		}
		out[current] = append(out[current], zl)
	}
	return out
}

// wallPoint names one instant where the zone's total UTC offset (standard
// plus any savings in force) changes.
type wallPoint struct {
	epoch  int64
	offset civil.ZoneOffset
}

// stdPoint names one instant where the zone's standard (non-DST) offset
// changes, independent of any savings toggling within that regime.
type stdPoint struct {
	epoch  int64
	offset civil.ZoneOffset
}

func buildZone(chain []tzdata.ZoneLine, rulesByName map[string][]tzdata.RuleLine, horizonYear int) (*tz.Rules, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("empty continuation chain")
	}

	var wallPoints []wallPoint
	var stdPoints []stdPoint
	var lastRules []tz.TransitionRule

	startMoment := tzexpand.Moment{Year: 1, Month: time.January, Day: 1}
	// currentWall tracks the offset in force immediately before the next
	// transition being computed, seeding the very first era's flat regime.
	firstStd, err := stdOffset(chain[0])
	if err != nil {
		return nil, err
	}
	currentWall := firstStd

	for i, era := range chain {
		isLast := i == len(chain)-1

		std, err := stdOffset(era)
		if err != nil {
			return nil, err
		}
		if len(stdPoints) == 0 || stdPoints[len(stdPoints)-1].offset != std {
			// Standard offset changes are recorded at the era's start,
			// i.e. the end of the previous era (or the dawn of time for
			// the very first era, which needs no explicit point).
			if len(stdPoints) > 0 {
				stdPoints = append(stdPoints, stdPoint{epoch: stdPoints[len(stdPoints)-1].epoch, offset: std})
			}
		}

		endMoment := tzexpand.Moment{Year: horizonYear}
		if era.Until.Defined {
			endMoment = momentFromUntil(era.Until, horizonYear)
		}

		switch era.Rules.Form {
		case tzdata.ZoneRulesStandard:
			currentWall = std
			if !isLast {
				endEpoch := untilEpoch(era.Until, currentWall)
				wallPoints = appendWallPoint(wallPoints, endEpoch, std)
				stdPoints = appendStdPointAt(stdPoints, endEpoch, std)
			}

		case tzdata.ZoneRulesTime:
			savingsOffset, err := addDuration(std, era.Rules.Time.Duration)
			if err != nil {
				return nil, err
			}
			currentWall = savingsOffset
			if !isLast {
				endEpoch := untilEpoch(era.Until, currentWall)
				wallPoints = appendWallPoint(wallPoints, endEpoch, savingsOffset)
			}

		case tzdata.ZoneRulesName:
			named := rulesByName[era.Rules.Name]
			finite, perpetual := splitRules(named)

			finiteExpanded := tzexpand.ExpandRules(startMoment, endMoment, finite)
			for _, rl := range finiteExpanded {
				epoch := ruleEpoch(rl, std, currentWall)
				offset, err := addDuration(std, rl.Save.Duration)
				if err != nil {
					return nil, err
				}
				wallPoints = appendWallPoint(wallPoints, epoch, offset)
				currentWall = offset
			}

			if isLast && len(perpetual) > 0 {
				rules, explicitTail, err := buildTail(perpetual, std, horizonYear)
				if err != nil {
					return nil, err
				}
				lastRules = append(lastRules, rules...)
				for _, rl := range explicitTail {
					epoch := ruleEpoch(rl, std, currentWall)
					offset, err := addDuration(std, rl.Save.Duration)
					if err != nil {
						return nil, err
					}
					wallPoints = appendWallPoint(wallPoints, epoch, offset)
					currentWall = offset
				}
			} else if !isLast && len(perpetual) > 0 {
				// A perpetual rule set active only within a finite era
				// (superseded by a later era) still needs its
				// occurrences up to this era's end.
				expanded := tzexpand.ExpandRules(startMoment, endMoment, perpetual)
				for _, rl := range expanded {
					epoch := ruleEpoch(rl, std, currentWall)
					offset, err := addDuration(std, rl.Save.Duration)
					if err != nil {
						return nil, err
					}
					wallPoints = appendWallPoint(wallPoints, epoch, offset)
					currentWall = offset
				}
			}

			if !isLast {
				endEpoch := untilEpoch(era.Until, currentWall)
				wallPoints = appendWallPoint(wallPoints, endEpoch, std)
				currentWall = std
			}
		}

		startMoment = endMoment
	}

	sort.Slice(wallPoints, func(i, j int) bool { return wallPoints[i].epoch < wallPoints[j].epoch })
	sort.Slice(stdPoints, func(i, j int) bool { return stdPoints[i].epoch < stdPoints[j].epoch })

	savingsTransitions := make([]int64, len(wallPoints))
	wallOffsets := make([]civil.ZoneOffset, len(wallPoints)+1)
	wallOffsets[0] = firstStd
	for i, p := range wallPoints {
		savingsTransitions[i] = p.epoch
		wallOffsets[i+1] = p.offset
	}

	standardTransitions := make([]int64, len(stdPoints))
	standardOffsets := make([]civil.ZoneOffset, len(stdPoints)+1)
	standardOffsets[0] = firstStd
	for i, p := range stdPoints {
		standardTransitions[i] = p.epoch
		standardOffsets[i+1] = p.offset
	}

	if len(wallPoints) == 0 && len(stdPoints) == 0 && len(lastRules) == 0 {
		return tz.FixedRules(firstStd), nil
	}
	return tz.NewRules(standardTransitions, standardOffsets, savingsTransitions, wallOffsets, lastRules)
}

func appendWallPoint(points []wallPoint, epoch int64, offset civil.ZoneOffset) []wallPoint {
	if len(points) > 0 && points[len(points)-1].epoch == epoch {
		points[len(points)-1].offset = offset
		return points
	}
	return append(points, wallPoint{epoch: epoch, offset: offset})
}

func appendStdPointAt(points []stdPoint, epoch int64, offset civil.ZoneOffset) []stdPoint {
	return append(points, stdPoint{epoch: epoch, offset: offset})
}

func stdOffset(era tzdata.ZoneLine) (civil.ZoneOffset, error) {
	return civil.ZoneOffsetOfTotalSeconds(int(era.Offset / time.Second))
}

func addDuration(base civil.ZoneOffset, d time.Duration) (civil.ZoneOffset, error) {
	return civil.ZoneOffsetOfTotalSeconds(base.TotalSeconds() + int(d/time.Second))
}

// splitRules separates a named rule set into finite (bounded TO year)
// entries and perpetual (TO "max") entries.
func splitRules(rules []tzdata.RuleLine) (finite, perpetual []tzdata.RuleLine) {
	for _, rl := range rules {
		if rl.To == tzdata.MaxYear {
			perpetual = append(perpetual, rl)
		} else {
			finite = append(finite, rl)
		}
	}
	return finite, perpetual
}

// buildTail converts a zone's perpetual rule set into recurring
// tz.TransitionRules where possible, falling back to explicit per-year
// materialization (through horizonYear) for any rule using DayFormBefore,
// which tz.TransitionRule.MaterializeFor cannot express.
func buildTail(perpetual []tzdata.RuleLine, standard civil.ZoneOffset, horizonYear int) (recurring []tz.TransitionRule, explicit []tzdata.RuleLine, err error) {
	var needsExplicit []tzdata.RuleLine
	for _, rl := range perpetual {
		if rl.On.Form == tzdata.DayFormBefore {
			needsExplicit = append(needsExplicit, rl)
			continue
		}
		offsetAfter, err := addDuration(standard, rl.Save.Duration)
		if err != nil {
			return nil, nil, err
		}
		tr := tz.TransitionRule{
			Month:          int(rl.In),
			StandardOffset: standard,
			OffsetAfter:    offsetAfter,
			LocalTime:      timeOfDayToLocalTime(rl.At.Duration),
			TimeDefinition: timeDefinitionOf(rl.At.Form),
		}
		switch rl.On.Form {
		case tzdata.DayFormDayNum:
			tr.DayOfMonthIndicator = rl.On.Num
			tr.HasDOW = false
		case tzdata.DayFormLast:
			tr.DayOfMonthIndicator = -1
			tr.HasDOW = true
			tr.DayOfWeek = rl.On.Day
		case tzdata.DayFormAfter:
			tr.DayOfMonthIndicator = rl.On.Num
			tr.HasDOW = true
			tr.DayOfWeek = rl.On.Day
		}
		recurring = append(recurring, tr)
	}

	if len(needsExplicit) > 0 {
		endMoment := tzexpand.Moment{Year: horizonYear}
		startMoment := tzexpand.Moment{Year: horizonYear - tailYears}
		explicit = tzexpand.ExpandRules(startMoment, endMoment, needsExplicit)
	}

	// OffsetBefore is only known once the recurring rules are chained
	// together (each rule's OffsetBefore is the offset the previous
	// transition in the sequence left in force); since a zone's
	// perpetual rules always alternate between exactly two regimes
	// (standard and one savings amount), OffsetBefore for the "onset"
	// rule is the standard offset and for the "end" rule is whatever
	// savings amount its counterpart introduces.
	fillPairedOffsets(recurring, standard)

	return recurring, explicit, nil
}

// fillPairedOffsets sets each recurring TransitionRule's OffsetBefore to
// whichever of its siblings' OffsetAfter differs from its own OffsetAfter,
// following the two-regime alternation typical of a zone's DST rule pair.
func fillPairedOffsets(rules []tz.TransitionRule, standard civil.ZoneOffset) {
	for i := range rules {
		if rules[i].OffsetAfter == standard {
			rules[i].OffsetBefore = standard
			for _, other := range rules {
				if other.OffsetAfter != standard {
					rules[i].OffsetBefore = other.OffsetAfter
					break
				}
			}
		} else {
			rules[i].OffsetBefore = standard
		}
	}
}

func timeOfDayToLocalTime(d time.Duration) civil.LocalTime {
	secondOfDay := int(d / time.Second % 86400)
	if secondOfDay < 0 {
		secondOfDay += 86400
	}
	lt, err := civil.LocalTimeFromSecondOfDay(secondOfDay, 0)
	if err != nil {
		return civil.LocalTime{}
	}
	return lt
}

func timeDefinitionOf(form tzdata.TimeForm) tz.TimeDefinition {
	switch form {
	case tzdata.UniversalTime:
		return tz.TimeDefUTC
	case tzdata.StandardTime:
		return tz.TimeDefStandard
	default:
		return tz.TimeDefWall
	}
}

// ruleEpoch converts a materialized RuleLine occurrence into an epoch
// second, interpreting its AT column against the offset in force
// immediately beforehand (standard for TimeDefStandard, UTC for
// TimeDefUTC, currentWall otherwise).
func ruleEpoch(rl tzdata.RuleLine, standard civil.ZoneOffset, currentWall civil.ZoneOffset) int64 {
	naive := unixtime.FromDateTime(int(rl.From), int(rl.In), rl.On.Num, 0, 0, 0) + int64(rl.At.Duration/time.Second)
	switch rl.At.Form {
	case tzdata.UniversalTime:
		return naive
	case tzdata.StandardTime:
		return naive - int64(standard.TotalSeconds())
	default:
		return naive - int64(currentWall.TotalSeconds())
	}
}

// untilEpoch converts a zone continuation line's UNTIL column into an
// epoch second, interpreting a wall-clock UNTIL against the offset in
// force in the era that is ending.
func untilEpoch(u tzdata.Until, currentWall civil.ZoneOffset) int64 {
	naive := tzexpand.Earliest(u)
	// tzexpand.Earliest already resolves defaults, but expresses the
	// result as a naive (UTC-as-given) epoch second; translate using the
	// era's own wall offset unless the UNTIL was given in UTC.
	if u.Parts.Has(tzdata.UntilTimeOnly) && u.Time.Form == tzdata.UniversalTime {
		return naive
	}
	return naive - int64(currentWall.TotalSeconds())
}

// momentFromUntil resolves a possibly-partial UNTIL column into a fully
// concrete Moment, defaulting missing trailing fields per tzdata's own
// "earliest possible value" rule. fallbackYear is unused when u is fully
// defined; it exists only to satisfy callers that pass an undefined Until.
func momentFromUntil(u tzdata.Until, fallbackYear int) tzexpand.Moment {
	if !u.Defined {
		return tzexpand.Moment{Year: fallbackYear}
	}
	year := u.Year
	month := time.January
	if u.Parts.Has(tzdata.UntilMonthOnly) {
		month = u.Month
	}
	day := 1
	if u.Parts.Has(tzdata.UntilDayOnly) {
		var y int
		y, month, day = tzexpand.DayOfMonth(year, month, u.Day)
		year = y
	}
	return tzexpand.Moment{Year: year, Month: month, Day: day}
}
