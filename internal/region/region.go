// Package region classifies event locations into countries and the
// domestic/international site sections.
//
// Classification is a mapping table plus a short keyword list: a
// parenthesized country name in the spreadsheet's region column (e.g.
// "パリ(フランス)") is translated to an English display name, and
// everything else is treated as domestic.
package region

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultMapping translates Japanese country names found in the region
// column to English display names. A YAML mapping file can extend or
// override these entries.
var defaultMapping = map[string]string{
	"アメリカ":    "USA",
	"イギリス":    "UK",
	"イタリア":    "Italy",
	"オランダ":    "Netherlands",
	"オーストラリア": "Australia",
	"カナダ":     "Canada",
	"シンガポール":  "Singapore",
	"スペイン":    "Spain",
	"タイ":      "Thailand",
	"チェコ":     "Czech Republic",
	"ドイツ":     "Germany",
	"フランス":    "France",
	"ベルギー":    "Belgium",
	"中国":      "China",
	"台湾":      "Taiwan",
	"韓国":      "South Korea",
}

// countryRe matches a parenthesized country name in a region string,
// accepting both ASCII and full-width parentheses.
var countryRe = regexp.MustCompile(`[(（]([^)）]+)[)）]`)

// Classifier resolves countries from free-text region strings
type Classifier struct {
	mapping map[string]string
}

// New creates a Classifier with the built-in country mapping
func New() *Classifier {
	mapping := make(map[string]string, len(defaultMapping))
	for name, english := range defaultMapping {
		mapping[name] = english
	}
	return &Classifier{mapping: mapping}
}

// LoadMapping merges country name entries from a YAML file into the
// classifier, overriding built-in entries on conflict. The file carries a
// country_mappings map of Japanese names to English names.
func (c *Classifier) LoadMapping(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading country mapping: %w", err)
	}

	var file struct {
		CountryMappings map[string]string `yaml:"country_mappings"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing country mapping: %w", err)
	}

	for name, english := range file.CountryMappings {
		c.mapping[name] = english
	}
	return nil
}

// Country extracts the country from a region string.
//
// A parenthesized name is looked up in the mapping table, falling back to
// the literal text when unmapped:
//
//	"パリ(フランス)"          → "France"
//	"サンフランシスコ(アメリカ)" → "USA"
//	"東京都"                  → "Japan"
//
// Regions without parentheses default to Japan.
func (c *Classifier) Country(region string) string {
	if strings.TrimSpace(region) == "" {
		return "Japan"
	}

	m := countryRe.FindStringSubmatch(region)
	if m == nil {
		return "Japan"
	}

	name := strings.TrimSpace(m[1])
	if english, ok := c.mapping[name]; ok {
		return english
	}
	return name
}

// IsJapan reports whether a country value counts as domestic
func IsJapan(country string) bool {
	switch strings.ToLower(strings.TrimSpace(country)) {
	case "japan", "日本", "jp":
		return true
	}
	return false
}
