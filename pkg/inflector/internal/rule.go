package internal

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
)

type RuleType int

const (
	Plural RuleType = iota
	Singular
)

type RuleItem struct {
	Pattern     string
	Replacement string
}

type IrregularItem struct {
	Word        string
	Replacement string
}

type CompiledRule struct {
	Replacement string
	Regexp      *regexp.Regexp
}

type Rule struct {
	Type      RuleType
	Rules     []*RuleItem
	Irregular []*IrregularItem

	uninflected         []string
	compiledIrregular   *regexp.Regexp
	compiledUninflected *regexp.Regexp
	compiledRules       []*CompiledRule

	irregularMap map[string]string

	cache sync.Map
}

func (r *Rule) Inflected(s string) string {
	if s == "" {
		return s
	}

	inflected, _ := r.cache.LoadOrStore(s, sync.OnceValue(func() string {
		return r.inflected(s)
	}))
	return inflected.(func() string)()
}

func (r *Rule) inflected(s string) string {
	if r.compiledIrregular != nil {
		if res := r.compiledIrregular.FindStringSubmatch(s); len(res) >= 3 && res[2] != "" {
			if replacement, ok := r.irregularMap[strings.ToLower(res[2])]; ok {
				return res[1] + matchCase(res[2], replacement)
			}
		}
	}

	if r.compiledUninflected.MatchString(s) {
		return s
	}

	for _, re := range r.compiledRules {
		if re.Regexp.MatchString(s) {
			return re.Regexp.ReplaceAllString(s, re.Replacement)
		}
	}

	return s
}

func (r *Rule) Init() error {
	switch r.Type {
	case Plural:
		r.uninflected = slices.Concat(uninflected, uninflectedPlurals)
	case Singular:
		r.uninflected = slices.Concat(uninflected, uninflectedSingulars)
	default:
		return fmt.Errorf("unsupported rule type %d", r.Type)
	}

	compiledUninflected, err := regexp.Compile(fmt.Sprintf(`(?i)(^(?:%s))$`, strings.Join(r.uninflected, `|`)))
	if err != nil {
		return err
	}
	r.compiledUninflected = compiledUninflected

	r.irregularMap = make(map[string]string, len(r.Irregular))

	if len(r.Irregular) > 0 {
		words := make([]string, len(r.Irregular))
		for i, item := range r.Irregular {
			words[i] = regexp.QuoteMeta(item.Word)
			r.irregularMap[strings.ToLower(item.Word)] = item.Replacement
		}

		compiledIrregular, err := regexp.Compile(fmt.Sprintf(`(?i)(.*)\b((?:%s))$`, strings.Join(words, `|`)))
		if err != nil {
			return err
		}
		r.compiledIrregular = compiledIrregular
	}

	r.compiledRules = make([]*CompiledRule, len(r.Rules))
	for i, item := range r.Rules {
		re, err := regexp.Compile(item.Pattern)
		if err != nil {
			return fmt.Errorf("invalid rule %q: %w", item.Pattern, err)
		}
		r.compiledRules[i] = &CompiledRule{Replacement: item.Replacement, Regexp: re}
	}

	return nil
}

var (
	uninflected = []string{
		`Amoyese`, `bison`, `Borghese`, `bream`, `breeches`, `britches`, `buffalo`,
		`cantus`, `carp`, `chassis`, `clippers`, `cod`, `coitus`, `Congoese`,
		`contretemps`, `corps`, `debris`, `diabetes`, `djinn`, `eland`, `elk`,
		`equipment`, `Faroese`, `flounder`, `Foochowese`, `gallows`, `Genevese`,
		`Genoese`, `Gilbertese`, `graffiti`, `headquarters`, `herpes`, `hijinks`,
		`Hottentotese`, `information`, `innings`, `jackanapes`, `Kiplingese`,
		`Kongoese`, `Lucchese`, `mackerel`, `Maltese`, `.*?media`, `mews`, `moose`,
		`mumps`, `Nankingese`, `news`, `nexus`, `Niasese`, `Pekingese`,
		`Piedmontese`, `pincers`, `Pistoiese`, `pliers`, `Portuguese`, `proceedings`,
		`rabies`, `rice`, `rhinoceros`, `salmon`, `Sarawakese`, `scissors`,
		`sea[- ]bass`, `series`, `Shavese`, `shears`, `siemens`, `species`, `swine`,
		`testes`, `trousers`, `trout`, `tuna`, `Vermontese`, `Wenchowese`, `whiting`,
		`wildebeest`, `Yengeese`,
	}
	uninflectedPlurals = []string{
		`.*[nrlm]ese`, `.*deer`, `.*fish`, `.*measles`, `.*ois`, `.*pox`, `.*sheep`,
		`people`,
	}

	uninflectedSingulars = []string{
		`.*[nrlm]ese`, `.*deer`, `.*fish`, `.*measles`, `.*ois`, `.*pox`, `.*sheep`,
		`.*ss`,
	}
)
