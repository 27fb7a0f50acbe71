package texture

import (
	"strings"
	"unicode"

	"irchumanizer/internal/mind"
)

// Pipeline is the ordered chain of probabilistic text-mangling transforms
// applied to every outgoing line. Order matters: later stages operate on the
// output of earlier ones (abbreviation happens before case-lowering, for
// example). Each stage draws its own gate; none assumes non-empty input.
type Pipeline struct {
	dice *mind.Dice
}

// NewPipeline creates a Pipeline over the agent's dice.
func NewPipeline(dice *mind.Dice) *Pipeline {
	return &Pipeline{dice: dice}
}

// Apply runs every stage in fixed order.
func (p *Pipeline) Apply(text string) string {
	for _, stage := range []func(string) string{
		p.applyTypos,
		p.applyAbbreviations,
		p.lowerLeadChar,
		p.dropTerminalPunct,
		p.dropQuestionMarks,
		p.addEllipsis,
		p.repeatLetter,
		p.addHesitation,
		p.addSelfCorrection,
	} {
		text = stage(text)
	}
	return text
}

// applyTypos substitutes common misspellings, preserving the case class of
// the matched occurrence.
func (p *Pipeline) applyTypos(text string) string {
	if text == "" || !p.dice.Chance(0.4) {
		return text
	}
	result := text
	for _, entry := range typoTable {
		if p.dice.Chance(0.5) {
			result = replacePreservingCase(result, entry.canonical, p.dice.Pick(entry.variants))
		}
	}
	return result
}

// applyAbbreviations swaps in SMS shorthand, capped per message so the text
// does not get over-mangled. Table order is shuffled per call.
func (p *Pipeline) applyAbbreviations(text string) string {
	if text == "" || !p.dice.Chance(0.35) {
		return text
	}
	maxReplacements := p.dice.IntBetween(2, 4)
	replaced := 0
	result := text
	for _, i := range p.dice.Perm(len(abbreviationTable)) {
		if replaced >= maxReplacements {
			break
		}
		entry := abbreviationTable[i]
		if !strings.Contains(strings.ToLower(result), entry.canonical) {
			continue
		}
		if p.dice.Chance(0.5) {
			result = replacePreservingCase(result, entry.canonical, p.dice.Pick(entry.variants))
			replaced++
		}
	}
	return result
}

func (p *Pipeline) lowerLeadChar(text string) string {
	if text == "" || !p.dice.Chance(0.6) {
		return text
	}
	runes := []rune(text)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func (p *Pipeline) dropTerminalPunct(text string) string {
	if !p.dice.Chance(0.3) {
		return text
	}
	if len(text) > 1 && (strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?")) {
		return text[:len(text)-1]
	}
	return text
}

func (p *Pipeline) dropQuestionMarks(text string) string {
	if !p.dice.Chance(0.1) {
		return text
	}
	stripped := strings.ReplaceAll(text, "?", "")
	if strings.TrimSpace(stripped) == "" {
		return text
	}
	return stripped
}

func (p *Pipeline) addEllipsis(text string) string {
	if text == "" || !p.dice.Chance(0.2) {
		return text
	}
	return text + "..."
}

// repeatLetter elongates the first eligible vowel-like character that passes
// its per-character draw ("ouaaai"); at most one elongation per message.
func (p *Pipeline) repeatLetter(text string) string {
	if !p.dice.Chance(0.15) {
		return text
	}
	runes := []rune(text)
	for i, r := range runes {
		if strings.ContainsRune(repeatableChars, unicode.ToLower(r)) && p.dice.Chance(0.3) {
			reps := p.dice.IntBetween(1, 3)
			elongated := append([]rune{}, runes[:i+1]...)
			for j := 0; j < reps; j++ {
				elongated = append(elongated, unicode.ToLower(r))
			}
			elongated = append(elongated, runes[i+1:]...)
			return string(elongated)
		}
	}
	return text
}

func (p *Pipeline) addHesitation(text string) string {
	if text == "" || !p.dice.Chance(0.1) {
		return text
	}
	h := p.dice.Pick(hesitations)
	if p.dice.Chance(0.5) {
		return h + " " + text
	}
	return text + " " + h
}

func (p *Pipeline) addSelfCorrection(text string) string {
	if text == "" || !p.dice.Chance(0.03) {
		return text
	}
	return text + " " + p.dice.Pick(selfCorrections)
}

// replacePreservingCase replaces one case-insensitive occurrence of canonical
// in text with variant, matching the occurrence's case class (lower,
// Capitalized, UPPER).
func replacePreservingCase(text, canonical, variant string) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(canonical))
	if idx < 0 {
		return text
	}
	matched := text[idx : idx+len(canonical)]

	replacement := variant
	switch caseClassOf(matched) {
	case caseUpper:
		replacement = strings.ToUpper(variant)
	case caseCapitalized:
		replacement = capitalize(variant)
	}

	return text[:idx] + replacement + text[idx+len(canonical):]
}

type caseClass int

const (
	caseLower caseClass = iota
	caseCapitalized
	caseUpper
)

func caseClassOf(s string) caseClass {
	runes := []rune(s)
	if len(runes) == 0 {
		return caseLower
	}
	if s == strings.ToUpper(s) && s != strings.ToLower(s) {
		return caseUpper
	}
	if unicode.IsUpper(runes[0]) {
		return caseCapitalized
	}
	return caseLower
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
