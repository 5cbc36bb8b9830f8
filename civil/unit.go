package civil

// Unit is a temporal unit used by Plus/Minus/PeriodUntil: a granularity of
// time such as DAYS or MONTHS. Like Field, the set is closed.
type Unit int

const (
	Nanos Unit = iota
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
	Forever
)

var unitNames = [...]string{
	"Nanos", "Micros", "Millis", "Seconds", "Minutes", "Hours", "HalfDays",
	"Days", "Weeks", "Months", "Years", "Decades", "Centuries", "Millennia",
	"Eras", "Forever",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "UnknownUnit"
	}
	return unitNames[u]
}

// EstimatedSeconds is the nominal duration of the unit, in seconds, used only
// for ordering/comparison of units (e.g. deciding whether WEEKS is coarser
// than DAYS). Calendar arithmetic never uses this value directly — it uses
// the exact rules in LocalDate/LocalTime/LocalDateTime instead, since
// date-based units such as MONTHS do not have a fixed length.
func (u Unit) EstimatedSeconds() int64 {
	switch u {
	case Nanos:
		return 0
	case Micros:
		return 0
	case Millis:
		return 0
	case Seconds:
		return 1
	case Minutes:
		return 60
	case Hours:
		return 3600
	case HalfDays:
		return 43200
	case Days:
		return 86400
	case Weeks:
		return 7 * 86400
	case Months:
		return 31_556_952 / 12 // 30.436875 days, the average Gregorian month
	case Years:
		return 31_556_952 // 365.2425 days, the average Gregorian year
	case Decades:
		return 10 * Years.EstimatedSeconds()
	case Centuries:
		return 100 * Years.EstimatedSeconds()
	case Millennia:
		return 1000 * Years.EstimatedSeconds()
	case Eras:
		return 1_000_000_000 * Years.EstimatedSeconds()
	default:
		return 1<<63 - 1
	}
}

// IsDateBased reports whether u is DAYS or coarser, the units for which
// "plus N units" means calendar arithmetic rather than an absolute duration.
func (u Unit) IsDateBased() bool { return u >= Days }

// IsTimeBased reports whether u is finer than DAYS.
func (u Unit) IsTimeBased() bool { return u < Days }
