package patch

import "strings"

// Rule is one literal substitution: every non-overlapping occurrence of
// Pattern becomes Replacement.
type Rule struct {
	Pattern     string
	Replacement string
	// Note names the character the pattern stands for, for display only.
	Note string
}

// Ruleset is an ordered list of rules applied strictly in declaration order.
type Ruleset []Rule

// Apply runs every rule over text in order and returns the rewritten text
// plus the per-rule replacement counts, index-aligned with the ruleset.
func (rs Ruleset) Apply(text string) (string, []int) {
	counts := make([]int, len(rs))
	for i, rule := range rs {
		if rule.Pattern == "" {
			continue
		}
		n := strings.Count(text, rule.Pattern)
		if n == 0 {
			continue
		}
		counts[i] = n
		text = strings.ReplaceAll(text, rule.Pattern, rule.Replacement)
	}
	return text, counts
}

// Total sums a count slice returned by Apply.
func Total(counts []int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// substitute is the plain-text stand-in written over every repaired sequence.
const substitute = "??"

// knownEmojis lists the characters the migration left corrupted in the
// target source file.
var knownEmojis = []string{
	"🎯",
	"🎨",
	"🚀",
	"🎉",
	"✅",
	"❌",
	"⚠️",
	"📝",
	"🔧",
	"💡",
}

// DefaultRules patches each known emoji under two spellings: the mojibake
// produced when its UTF-8 bytes were decoded as Windows-1252, and the raw
// character itself for files that were never double-encoded. Substitutes are
// pure ASCII, so no rule's output can match a later pattern and a second run
// is a no-op.
func DefaultRules() Ruleset {
	rules := make(Ruleset, 0, len(knownEmojis)*2)
	for _, emoji := range knownEmojis {
		rules = append(rules, Rule{Pattern: Mojibake(emoji), Replacement: substitute, Note: emoji + " (mojibake)"})
	}
	for _, emoji := range knownEmojis {
		rules = append(rules, Rule{Pattern: emoji, Replacement: substitute, Note: emoji})
	}
	return rules
}
