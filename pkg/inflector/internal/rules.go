package internal

func init() {
	Defaults.MustRegister(&Rule{
		Type:      Plural,
		Rules:     pluralRules,
		Irregular: irregular,
	})

	Defaults.MustRegister(&Rule{
		Type:      Singular,
		Rules:     singularRules,
		Irregular: inverted(irregular),
	})
}

func inverted(items []*IrregularItem) []*IrregularItem {
	inv := make([]*IrregularItem, len(items))
	for i, item := range items {
		inv[i] = &IrregularItem{Word: item.Replacement, Replacement: item.Word}
	}
	return inv
}

var irregular = []*IrregularItem{
	{Word: "atlas", Replacement: "atlases"},
	{Word: "beef", Replacement: "beefs"},
	{Word: "brother", Replacement: "brothers"},
	{Word: "cafe", Replacement: "cafes"},
	{Word: "child", Replacement: "children"},
	{Word: "cookie", Replacement: "cookies"},
	{Word: "corpus", Replacement: "corpuses"},
	{Word: "cow", Replacement: "cows"},
	{Word: "foot", Replacement: "feet"},
	{Word: "ganglion", Replacement: "ganglions"},
	{Word: "genie", Replacement: "genies"},
	{Word: "genus", Replacement: "genera"},
	{Word: "goose", Replacement: "geese"},
	{Word: "graffito", Replacement: "graffiti"},
	{Word: "hoof", Replacement: "hoofs"},
	{Word: "human", Replacement: "humans"},
	{Word: "loaf", Replacement: "loaves"},
	{Word: "man", Replacement: "men"},
	{Word: "money", Replacement: "monies"},
	{Word: "mongoose", Replacement: "mongooses"},
	{Word: "move", Replacement: "moves"},
	{Word: "mythos", Replacement: "mythoi"},
	{Word: "niche", Replacement: "niches"},
	{Word: "numen", Replacement: "numina"},
	{Word: "occiput", Replacement: "occiputs"},
	{Word: "octopus", Replacement: "octopuses"},
	{Word: "opus", Replacement: "opuses"},
	{Word: "ox", Replacement: "oxen"},
	{Word: "person", Replacement: "people"},
	{Word: "sex", Replacement: "sexes"},
	{Word: "soliloquy", Replacement: "soliloquies"},
	{Word: "testis", Replacement: "testes"},
	{Word: "tooth", Replacement: "teeth"},
	{Word: "trilby", Replacement: "trilbys"},
	{Word: "turf", Replacement: "turfs"},
}

// first match wins, so specific patterns come before general ones
var pluralRules = []*RuleItem{
	{Pattern: `(?i)(s)tatus$`, Replacement: `${1}tatuses`},
	{Pattern: `(?i)(quiz)$`, Replacement: `${1}zes`},
	{Pattern: `(?i)^(ox)$`, Replacement: `${1}en`},
	{Pattern: `(?i)([ml])ouse$`, Replacement: `${1}ice`},
	{Pattern: `(?i)(matr|vert|ind)(ix|ex)$`, Replacement: `${1}ices`},
	{Pattern: `(?i)(x|ch|ss|sh)$`, Replacement: `${1}es`},
	{Pattern: `(?i)([^aeiouy]|qu)y$`, Replacement: `${1}ies`},
	{Pattern: `(?i)(hive|gulf)$`, Replacement: `${1}s`},
	{Pattern: `(?i)(?:([^f])fe|([lr])f)$`, Replacement: `${1}${2}ves`},
	{Pattern: `(?i)sis$`, Replacement: `ses`},
	{Pattern: `(?i)([ti])um$`, Replacement: `${1}a`},
	{Pattern: `(?i)(p)erson$`, Replacement: `${1}eople`},
	{Pattern: `(?i)(m)an$`, Replacement: `${1}en`},
	{Pattern: `(?i)(c)hild$`, Replacement: `${1}hildren`},
	{Pattern: `(?i)(buffal|tomat|potat|her)o$`, Replacement: `${1}oes`},
	{Pattern: `(?i)(alumn|bacill|cact|foc|fung|nucle|radi|stimul|syllab|termin)us$`, Replacement: `${1}i`},
	{Pattern: `(?i)us$`, Replacement: `uses`},
	{Pattern: `(?i)(alias)$`, Replacement: `${1}es`},
	{Pattern: `(?i)(ax|cris|test)is$`, Replacement: `${1}es`},
	{Pattern: `(?i)s$`, Replacement: `s`},
	{Pattern: `$`, Replacement: `s`},
}

var singularRules = []*RuleItem{
	{Pattern: `(?i)(s)tatuses$`, Replacement: `${1}tatus`},
	{Pattern: `(?i)^(.*)(menu)s$`, Replacement: `${1}${2}`},
	{Pattern: `(?i)(quiz)zes$`, Replacement: `${1}`},
	{Pattern: `(?i)(matr)ices$`, Replacement: `${1}ix`},
	{Pattern: `(?i)(vert|ind)ices$`, Replacement: `${1}ex`},
	{Pattern: `(?i)^(ox)en`, Replacement: `${1}`},
	{Pattern: `(?i)(alias)(es)*$`, Replacement: `${1}`},
	{Pattern: `(?i)(alumn|bacill|cact|foc|fung|nucle|radi|stimul|syllab|termin|viri?)i$`, Replacement: `${1}us`},
	{Pattern: `(?i)([ftw]ax)es`, Replacement: `${1}`},
	{Pattern: `(?i)(cris|ax|test)es$`, Replacement: `${1}is`},
	{Pattern: `(?i)(shoe|slave)s$`, Replacement: `${1}`},
	{Pattern: `(?i)(o)es$`, Replacement: `${1}`},
	{Pattern: `(?i)ouses$`, Replacement: `ouse`},
	{Pattern: `(?i)([^a])uses$`, Replacement: `${1}us`},
	{Pattern: `(?i)([ml])ice$`, Replacement: `${1}ouse`},
	{Pattern: `(?i)(x|ch|ss|sh)es$`, Replacement: `${1}`},
	{Pattern: `(?i)(m)ovies$`, Replacement: `${1}ovie`},
	{Pattern: `(?i)(s)eries$`, Replacement: `${1}eries`},
	{Pattern: `(?i)([^aeiouy]|qu)ies$`, Replacement: `${1}y`},
	{Pattern: `(?i)([lr])ves$`, Replacement: `${1}f`},
	{Pattern: `(?i)(tive|hive|drive)s$`, Replacement: `${1}`},
	{Pattern: `(?i)([^fo])ves$`, Replacement: `${1}fe`},
	{Pattern: `(?i)(analy|ba|diagno|parenthe|progno|synop|the)ses$`, Replacement: `${1}sis`},
	{Pattern: `(?i)([ti])a$`, Replacement: `${1}um`},
	{Pattern: `(?i)(p)eople$`, Replacement: `${1}erson`},
	{Pattern: `(?i)(m)en$`, Replacement: `${1}an`},
	{Pattern: `(?i)(c)hildren$`, Replacement: `${1}hild`},
	{Pattern: `(?i)(n)ews$`, Replacement: `${1}ews`},
	{Pattern: `(?i)eaus$`, Replacement: `eau`},
	{Pattern: `(?i)^(.*us)$`, Replacement: `${1}`},
	{Pattern: `(?i)s$`, Replacement: ``},
}
