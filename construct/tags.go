package construct

import "strings"

// Short forms of the tags the builder dispatches on.
const (
	TagMap        = "!!map"
	TagOrderedMap = "!!omap"
	TagPairs      = "!!pairs"
	TagSet        = "!!set"
	TagSeq        = "!!seq"
	TagNull       = "!!null"
	TagBool       = "!!bool"
	TagInt        = "!!int"
	TagFloat      = "!!float"
	TagStr        = "!!str"
	TagBinary     = "!!binary"
	TagTimestamp  = "!!timestamp"
)

const longTagPrefix = "tag:yaml.org,2002:"

// ShortTag returns the short form of a yaml.org tag. Other tags are
// returned unchanged.
func ShortTag(tag string) string {
	if rest, ok := strings.CutPrefix(tag, longTagPrefix); ok {
		return "!!" + rest
	}
	return tag
}

// LongTag returns the long form of a short yaml.org tag. Other tags are
// returned unchanged.
func LongTag(tag string) string {
	if rest, ok := strings.CutPrefix(tag, "!!"); ok {
		return longTagPrefix + rest
	}
	return tag
}
