package utility

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheSize is the number of generated rules kept for reuse.
const CacheSize = 1000

var cssCache = mustCache(CacheSize)

func mustCache(size int) *lru.Cache[string, string] {
	c, err := lru.New[string, string](size)
	if err != nil {
		panic(err)
	}
	return c
}

// CachedRules reports how many generated rules are currently cached.
func CachedRules() int {
	return cssCache.Len()
}

// GenerateCSS renders the CSS rule for a single class. Container size
// prefixes wrap the rule into @container blocks, screen prefixes into @media
// blocks, state prefixes add pseudo-classes. The first prefix ends up as the
// outermost block.
//
// Returns false if the utility part of the class is unknown.
func GenerateCSS(class string) (string, bool) {
	if cached, ok := cssCache.Get(class); ok {
		return cached, true
	}
	prefixes, u := split(class)
	attrs, ok := Lookup(u)
	if !ok {
		return "", false
	}
	var queries []string
	var pseudo strings.Builder
	for _, p := range prefixes {
		if size, ok := containerSizes[p]; ok {
			queries = append(queries, fmt.Sprintf("@container (min-width: %s)", size))
		} else if size, ok := screens[p]; ok {
			queries = append(queries, fmt.Sprintf("@media (min-width: %s)", size))
		} else if st, ok := states[p]; ok {
			pseudo.WriteString(st)
		}
	}
	selector := "." + escape(class) + pseudo.String()
	rule := fmt.Sprintf("%s {\n  %s\n}", selector, strings.Join(attrs.Declarations(), ";\n  "))
	for i := len(queries) - 1; i >= 0; i-- {
		rule = fmt.Sprintf("%s {\n  %s\n}", queries[i], rule)
	}
	cssCache.Add(class, rule)
	return rule, true
}

// Stylesheet renders the CSS for a set of classes, sorted by class name and
// separated by blank lines. Unknown classes are skipped.
func Stylesheet(classes []string) string {
	sorted := make([]string, len(classes))
	copy(sorted, classes)
	sort.Strings(sorted)
	var rules []string
	var prev string
	for i, class := range sorted {
		if i > 0 && class == prev {
			continue
		}
		prev = class
		if rule, ok := GenerateCSS(class); ok {
			rules = append(rules, rule)
		}
	}
	if len(rules) == 0 {
		return ""
	}
	return strings.Join(rules, "\n\n") + "\n"
}

func escape(class string) string {
	r := strings.NewReplacer(":", `\:`, "@", `\@`, ".", `\.`, "/", `\/`)
	return r.Replace(class)
}
