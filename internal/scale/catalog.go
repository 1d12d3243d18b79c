package scale

import "sync"

// TemplateScale is an ordered sequence of exactly 12 OKLCH colors,
// logical steps 1..12 at indices 0..11.
type TemplateScale struct {
	Name     string
	GrayLike bool
	Steps    [12]OKLCH
}

// TemplateCatalog maps scale name to its TemplateScale for one
// appearance. Immutable once built.
type TemplateCatalog struct {
	Scales map[string]TemplateScale
}

// grayLikeNames is the subset of template names considered neutral
// families; used to de-duplicate near-identical gray blend partners in
// the scale synthesizer (spec.md §4.5 step 2).
var grayLikeNames = map[string]bool{
	"gray":  true,
	"mauve": true,
	"slate": true,
	"sage":  true,
}

var (
	lightCatalog     *TemplateCatalog
	lightCatalogOnce sync.Once
	darkCatalog      *TemplateCatalog
	darkCatalogOnce  sync.Once
)

// catalogFor returns the process-wide singleton TemplateCatalog for the
// given appearance, building it from the static P3 token tables on
// first use. Building panics on a malformed token, since a bad token
// indicates corrupt built-in data, not a caller mistake (spec.md §7:
// InvalidP3Token is fatal to initialization).
func catalogFor(isLight bool) *TemplateCatalog {
	if isLight {
		lightCatalogOnce.Do(func() {
			lightCatalog = buildCatalog(templateTokensLight)
		})
		return lightCatalog
	}
	darkCatalogOnce.Do(func() {
		darkCatalog = buildCatalog(templateTokensDark)
	})
	return darkCatalog
}

func buildCatalog(tokens map[string][12]string) *TemplateCatalog {
	scales := make(map[string]TemplateScale, len(tokens))
	for name, toks := range tokens {
		var steps [12]OKLCH
		for i, tok := range toks {
			rgb, err := parseP3Token(tok)
			if err != nil {
				panic(err)
			}
			steps[i] = rgbToOklch(rgb)
		}
		scales[name] = TemplateScale{
			Name:     name,
			GrayLike: grayLikeNames[name],
			Steps:    steps,
		}
	}
	return &TemplateCatalog{Scales: scales}
}
