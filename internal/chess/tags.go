package chess

import "strings"

// TagName identifies a header tag the extractor knows how to map.
// The set is closed: any other key looks up as UnknownTag.
type TagName int

const (
	UnknownTag TagName = iota
	EventTag
	SiteTag
	DateTag
	RoundTag
	WhiteTag
	BlackTag
	ResultTag
	UTCDateTag
	UTCTimeTag
	WhiteEloTag
	BlackEloTag
	WhiteRatingDiffTag
	BlackRatingDiffTag
	ECOTag
	OpeningTag
	TimeControlTag
	TerminationTag
	FENTag
	SetupTag
	VariantTag
	NumberOfTags // Sentinel, must be last
)

var tagNameStrings = [NumberOfTags]string{
	UnknownTag:         "",
	EventTag:           "Event",
	SiteTag:            "Site",
	DateTag:            "Date",
	RoundTag:           "Round",
	WhiteTag:           "White",
	BlackTag:           "Black",
	ResultTag:          "Result",
	UTCDateTag:         "UTCDate",
	UTCTimeTag:         "UTCTime",
	WhiteEloTag:        "WhiteElo",
	BlackEloTag:        "BlackElo",
	WhiteRatingDiffTag: "WhiteRatingDiff",
	BlackRatingDiffTag: "BlackRatingDiff",
	ECOTag:             "ECO",
	OpeningTag:         "Opening",
	TimeControlTag:     "TimeControl",
	TerminationTag:     "Termination",
	FENTag:             "FEN",
	SetupTag:           "SetUp",
	VariantTag:         "Variant",
}

var stringToTagName map[string]TagName

func init() {
	stringToTagName = make(map[string]TagName, NumberOfTags)
	for tag, name := range tagNameStrings {
		if name != "" {
			stringToTagName[name] = TagName(tag)
		}
	}
}

// String returns the PGN spelling of the tag.
func (t TagName) String() string {
	if t <= UnknownTag || t >= NumberOfTags {
		return "Unknown"
	}
	return tagNameStrings[t]
}

// LookupTag returns the tag for a header key. Keys are matched exactly, as
// PGN tag names are case sensitive.
func LookupTag(key string) TagName {
	if t, ok := stringToTagName[key]; ok {
		return t
	}
	return UnknownTag
}

// IsStandardVariant reports whether a Variant header value names ordinary
// chess. An empty value counts as standard.
func IsStandardVariant(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "standard", "chess", "normal", "from position":
		return true
	}
	return false
}

// IsChess960 reports whether a Variant header value names Chess960.
func IsChess960(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "chess960", "chess 960", "fischerandom", "fischerrandom", "fischer random":
		return true
	}
	return false
}
