package tz

// AliasTable maps deprecated or abbreviated zone identifiers (such as
// three-letter abbreviations like "EST") to the region ID the registry
// actually stores rules under. The source data's two historical tables
// disagree on whether "EST"/"MST"/"HST" should resolve to a fixed offset
// or a region, so both tables are provided as named instances rather than
// picking one answer, and callers select one via DefaultAliasTable.
type AliasTable struct {
	aliases map[string]string
}

// Resolve returns the region ID text should be looked up under: text
// itself if it has no alias entry, otherwise the alias target.
func (a AliasTable) Resolve(text string) string {
	if target, ok := a.aliases[text]; ok {
		return target
	}
	return text
}

// OldIDsPre2005 maps the abbreviations to region IDs, matching
// the pre-2005 IANA tzdata "backward" file convention.
var OldIDsPre2005 = AliasTable{aliases: map[string]string{
	"ACT":  "Australia/Darwin",
	"AET":  "Australia/Sydney",
	"AGT":  "America/Buenos_Aires",
	"ART":  "Africa/Cairo",
	"AST":  "America/Anchorage",
	"BET":  "America/Sao_Paulo",
	"BST":  "Asia/Dhaka",
	"CAT":  "Africa/Harare",
	"CNT":  "America/St_Johns",
	"CST":  "America/Chicago",
	"CTT":  "Asia/Shanghai",
	"EAT":  "Africa/Addis_Ababa",
	"ECT":  "Europe/Paris",
	"EST":  "America/New_York",
	"HST":  "Pacific/Honolulu",
	"IET":  "America/Indiana/Indianapolis",
	"IST":  "Asia/Kolkata",
	"JST":  "Asia/Tokyo",
	"MIT":  "Pacific/Apia",
	"MST":  "America/Denver",
	"NET":  "Asia/Yerevan",
	"NST":  "Pacific/Auckland",
	"PLT":  "Asia/Karachi",
	"PNT":  "America/Phoenix",
	"PRT":  "America/Puerto_Rico",
	"PST":  "America/Los_Angeles",
	"SST":  "Pacific/Guadalcanal",
	"VST":  "Asia/Ho_Chi_Minh",
}}

// OldIDsPost2005 maps EST/MST/HST to fixed UTC offsets (no DST, matching
// the post-2005 IANA tzdata convention) while keeping the rest of
// OldIDsPre2005's region mappings.
var OldIDsPost2005 = AliasTable{aliases: mergedAliases(OldIDsPre2005.aliases, map[string]string{
	"EST": "-05:00",
	"MST": "-07:00",
	"HST": "-10:00",
})}

func mergedAliases(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// DefaultAliasTable is the table used by ParseZoneID and ID.Rules.
// Overridable by callers that need the pre-2005 behavior.
var DefaultAliasTable = OldIDsPost2005
