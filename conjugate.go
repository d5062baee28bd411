package sintaxis

import "strings"

// ConjugationClass is the regular conjugation an infinitive belongs to.
type ConjugationClass string

const (
	ClassAR ConjugationClass = "AR"
	ClassER ConjugationClass = "ER"
	ClassIR ConjugationClass = "IR"
)

// reflexivePronoun prefixes every form of a reflexive infinitive.
const reflexivePronoun = "ME "

// endings holds the present indicative endings of each class, from the
// first person singular to the third person plural.
var endings = map[ConjugationClass][6]string{
	ClassAR: {"O", "AS", "A", "AMOS", "ÁIS", "AN"},
	ClassER: {"O", "ES", "E", "EMOS", "ÉIS", "EN"},
	ClassIR: {"O", "ES", "E", "IMOS", "ÍS", "EN"},
}

// infinitiveSuffix is a recognised infinitive ending. Matching is
// case-sensitive: the reflexive -ir suffix is only recognised in
// lowercase.
type infinitiveSuffix struct {
	suffix    string
	class     ConjugationClass
	reflexive bool
}

// suffixes are tried in order; reflexive suffixes first so that
// LEVANTARSE is not read as a non-reflexive stem.
var suffixes = []infinitiveSuffix{
	{"ARSE", ClassAR, true},
	{"ERSE", ClassER, true},
	{"irse", ClassIR, true},
	{"AR", ClassAR, false},
	{"ER", ClassER, false},
	{"IR", ClassIR, false},
}

// Paradigm is the analysis of an infinitive into stem, class and
// optional reflexive pronoun.
type Paradigm struct {
	Infinitive string
	Stem       string
	Class      ConjugationClass
	Reflexive  bool
}

// ParseInfinitive splits an infinitive into its Paradigm. ok is false
// when the infinitive has no recognised ending.
func ParseInfinitive(infinitive string) (p Paradigm, ok bool) {
	for _, s := range suffixes {
		if strings.HasSuffix(infinitive, s.suffix) {
			return Paradigm{
				Infinitive: infinitive,
				Stem:       infinitive[:len(infinitive)-len(s.suffix)],
				Class:      s.class,
				Reflexive:  s.reflexive,
			}, true
		}
	}
	return Paradigm{}, false
}

// Forms returns the six present indicative forms of the paradigm:
// pronoun + stem + ending, without normalization.
func (p Paradigm) Forms() []string {
	prefix := ""
	if p.Reflexive {
		prefix = reflexivePronoun
	}
	table := endings[p.Class]
	forms := make([]string, 0, len(table))
	for _, e := range table {
		forms = append(forms, prefix+p.Stem+e)
	}
	return forms
}

// Conjugate returns the six regular present forms of infinitive, or nil
// when its ending is not recognised.
func Conjugate(infinitive string) []string {
	p, ok := ParseInfinitive(infinitive)
	if !ok {
		return nil
	}
	return p.Forms()
}

// expandVerbs adds the conjugated forms of every verb to the Verb
// category. Infinitives are kept. Verbs with an unrecognised ending are
// skipped. The expansion runs at most once per lexicon; it returns the
// number of forms added.
func (lx *Lexicon) expandVerbs() (int, error) {
	if lx.expanded {
		return 0, nil
	}
	if lx.frozen {
		return 0, ErrLexiconFrozen
	}

	var generated []string
	for _, verb := range lx.Words(Verb) {
		generated = append(generated, Conjugate(verb)...)
	}

	before := lx.Len(Verb)
	for _, form := range unique(generated) {
		if err := lx.Add(Verb, form); err != nil {
			return 0, err
		}
	}
	lx.expanded = true
	return lx.Len(Verb) - before, nil
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
