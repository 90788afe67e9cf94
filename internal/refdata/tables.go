// Package refdata holds the static reference cost table and the personal
// adjustment factors the estimation engine computes against. Tables are
// read-only after load; hot reloads must swap a whole *Tables pointer rather
// than mutate leaves in place.
package refdata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
)

// Fallback keys every leaf must provide for unrecognized preferences.
const (
	FallbackHousing   = "shared"
	FallbackTransport = "public"
)

// TuitionRange is the annual tuition spread for one location.
type TuitionRange struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
	Avg decimal.Decimal `yaml:"avg" json:"avg"`
}

// MonthlyCost wraps a single monthly amount (food, insurance, misc).
type MonthlyCost struct {
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// CostLeaf is the innermost cost record for one specific city.
type CostLeaf struct {
	Tuition   TuitionRange               `yaml:"tuition" json:"tuition"`
	Housing   map[string]decimal.Decimal `yaml:"housing" json:"housing"`
	Food      MonthlyCost                `yaml:"food" json:"food"`
	Transport map[string]decimal.Decimal `yaml:"transport" json:"transport"`
	Insurance MonthlyCost                `yaml:"insurance" json:"insurance"`
	Misc      MonthlyCost                `yaml:"misc" json:"misc"`
}

// CostTable is the nested country -> region -> city mapping.
type CostTable map[string]map[string]map[string]*CostLeaf

// AdjustmentFactors maps the three independent personal dimensions to
// strictly positive multipliers. The base entry of each dimension is 1.0.
type AdjustmentFactors struct {
	Age          map[domain.AgeBracket]decimal.Decimal   `yaml:"age" json:"age"`
	FamilyStatus map[domain.FamilyStatus]decimal.Decimal `yaml:"familyStatus" json:"familyStatus"`
	EnglishLevel map[domain.EnglishLevel]decimal.Decimal `yaml:"englishLevel" json:"englishLevel"`
}

// Tables bundles everything the engine needs to resolve one profile.
type Tables struct {
	Costs   CostTable         `yaml:"costs" json:"costs"`
	Factors AdjustmentFactors `yaml:"factors" json:"factors"`
}

// LocationNotFoundError reports an unresolvable country/region/city triple.
// It is the engine's one hard failure: the data is static, so retrying a
// request that hit it cannot succeed.
type LocationNotFoundError struct {
	Country string
	Region  string
	City    string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("no cost data available for %s, %s, %s", e.City, e.Region, e.Country)
}

// Resolve performs the exact-match chained lookup. Any missing level fails
// with a *LocationNotFoundError; no partial result is returned.
func (t CostTable) Resolve(country, region, city string) (*CostLeaf, error) {
	regions, ok := t[country]
	if !ok {
		return nil, &LocationNotFoundError{Country: country, Region: region, City: city}
	}
	cities, ok := regions[region]
	if !ok {
		return nil, &LocationNotFoundError{Country: country, Region: region, City: city}
	}
	leaf, ok := cities[city]
	if !ok || leaf == nil {
		return nil, &LocationNotFoundError{Country: country, Region: region, City: city}
	}
	return leaf, nil
}

// Locations lists every resolvable "city, region, country" label, sorted.
// The wizard uses it to present destination choices.
func (t CostTable) Locations() []string {
	var out []string
	for country, regions := range t {
		for region, cities := range regions {
			for city := range cities {
				out = append(out, strings.Join([]string{city, region, country}, ", "))
			}
		}
	}
	sort.Strings(out)
	return out
}

// Validate asserts the structural invariants the engine depends on: every
// leaf defines all six categories, housing/transport sub-maps include their
// fallback keys, and all multipliers are strictly positive with 1.0 bases.
func (t *Tables) Validate() error {
	for country, regions := range t.Costs {
		if len(regions) == 0 {
			return fmt.Errorf("country %q has no regions", country)
		}
		for region, cities := range regions {
			if len(cities) == 0 {
				return fmt.Errorf("region %q (%s) has no cities", region, country)
			}
			for city, leaf := range cities {
				if err := validateLeaf(leaf); err != nil {
					return fmt.Errorf("leaf %s/%s/%s: %w", country, region, city, err)
				}
			}
		}
	}
	return t.Factors.validate()
}

func validateLeaf(leaf *CostLeaf) error {
	if leaf == nil {
		return fmt.Errorf("leaf is nil")
	}
	if leaf.Tuition.Avg.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("tuition avg must be positive")
	}
	if leaf.Tuition.Min.GreaterThan(leaf.Tuition.Max) {
		return fmt.Errorf("tuition min exceeds max")
	}
	if len(leaf.Housing) == 0 {
		return fmt.Errorf("housing category is missing")
	}
	if _, ok := leaf.Housing[FallbackHousing]; !ok {
		return fmt.Errorf("housing is missing fallback key %q", FallbackHousing)
	}
	if len(leaf.Transport) == 0 {
		return fmt.Errorf("transport category is missing")
	}
	if _, ok := leaf.Transport[FallbackTransport]; !ok {
		return fmt.Errorf("transport is missing fallback key %q", FallbackTransport)
	}
	if leaf.Food.Monthly.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("food category is missing")
	}
	if leaf.Insurance.Monthly.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("insurance category is missing")
	}
	if leaf.Misc.Monthly.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("misc category is missing")
	}
	return nil
}

func (f *AdjustmentFactors) validate() error {
	brackets := []domain.AgeBracket{domain.Age18To22, domain.Age23To27, domain.Age28To35, domain.Age36Plus}
	for _, b := range brackets {
		m, ok := f.Age[b]
		if !ok {
			return fmt.Errorf("age factor %q is missing", b)
		}
		if m.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("age factor %q must be positive", b)
		}
	}

	if !f.Age[domain.Age23To27].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("age factor %q must be 1.0", domain.Age23To27)
	}

	statuses := []domain.FamilyStatus{domain.FamilySingle, domain.FamilyCouple, domain.FamilyFamily}
	for _, s := range statuses {
		m, ok := f.FamilyStatus[s]
		if !ok {
			return fmt.Errorf("family factor %q is missing", s)
		}
		if m.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("family factor %q must be positive", s)
		}
	}
	if !f.FamilyStatus[domain.FamilySingle].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("family factor %q must be 1.0", domain.FamilySingle)
	}

	levels := []domain.EnglishLevel{domain.EnglishBasic, domain.EnglishIntermediate, domain.EnglishAdvanced}
	for _, l := range levels {
		m, ok := f.EnglishLevel[l]
		if !ok {
			return fmt.Errorf("english factor %q is missing", l)
		}
		if m.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("english factor %q must be positive", l)
		}
	}
	if !f.EnglishLevel[domain.EnglishAdvanced].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("english factor %q must be 1.0", domain.EnglishAdvanced)
	}

	return nil
}
