package refdata

import (
	"github.com/edooconnect/studycost/internal/domain"
	"github.com/shopspring/decimal"
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func factor(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// Default returns the built-in reference tables. The shipped dataset covers
// the initially supported destinations; deployments can extend it with a YAML
// override (see Load).
func Default() *Tables {
	return &Tables{
		Costs: CostTable{
			"canada": {
				"ontario": {
					"toronto": {
						Tuition:   TuitionRange{Min: money(15000), Max: money(45000), Avg: money(28000)},
						Housing:   map[string]decimal.Decimal{"dormitory": money(1000), "shared": money(800), "individual": money(1500), "homestay": money(900)},
						Food:      MonthlyCost{Monthly: money(400)},
						Transport: map[string]decimal.Decimal{"public": money(120), "bicycle": money(30), "car": money(500), "walking": money(0)},
						Insurance: MonthlyCost{Monthly: money(80)},
						Misc:      MonthlyCost{Monthly: money(300)},
					},
					"ottawa": {
						Tuition:   TuitionRange{Min: money(12000), Max: money(35000), Avg: money(22000)},
						Housing:   map[string]decimal.Decimal{"dormitory": money(800), "shared": money(600), "individual": money(1200), "homestay": money(750)},
						Food:      MonthlyCost{Monthly: money(350)},
						Transport: map[string]decimal.Decimal{"public": money(100), "bicycle": money(25), "car": money(450), "walking": money(0)},
						Insurance: MonthlyCost{Monthly: money(75)},
						Misc:      MonthlyCost{Monthly: money(250)},
					},
				},
				"british-columbia": {
					"vancouver": {
						Tuition:   TuitionRange{Min: money(18000), Max: money(50000), Avg: money(32000)},
						Housing:   map[string]decimal.Decimal{"dormitory": money(1200), "shared": money(1000), "individual": money(1800), "homestay": money(1100)},
						Food:      MonthlyCost{Monthly: money(450)},
						Transport: map[string]decimal.Decimal{"public": money(130), "bicycle": money(35), "car": money(550), "walking": money(0)},
						Insurance: MonthlyCost{Monthly: money(85)},
						Misc:      MonthlyCost{Monthly: money(350)},
					},
				},
			},
			"usa": {
				"california": {
					"los-angeles": {
						Tuition:   TuitionRange{Min: money(25000), Max: money(60000), Avg: money(40000)},
						Housing:   map[string]decimal.Decimal{"dormitory": money(1500), "shared": money(1200), "individual": money(2200), "homestay": money(1300)},
						Food:      MonthlyCost{Monthly: money(500)},
						Transport: map[string]decimal.Decimal{"public": money(100), "bicycle": money(40), "car": money(600), "walking": money(0)},
						Insurance: MonthlyCost{Monthly: money(150)},
						Misc:      MonthlyCost{Monthly: money(400)},
					},
				},
				"new-york": {
					"new-york-city": {
						Tuition:   TuitionRange{Min: money(30000), Max: money(70000), Avg: money(45000)},
						Housing:   map[string]decimal.Decimal{"dormitory": money(2000), "shared": money(1500), "individual": money(2800), "homestay": money(1600)},
						Food:      MonthlyCost{Monthly: money(600)},
						Transport: map[string]decimal.Decimal{"public": money(120), "bicycle": money(50), "car": money(800), "walking": money(0)},
						Insurance: MonthlyCost{Monthly: money(200)},
						Misc:      MonthlyCost{Monthly: money(500)},
					},
				},
			},
		},
		Factors: AdjustmentFactors{
			// Younger students spend less; older students more often carry a family.
			Age: map[domain.AgeBracket]decimal.Decimal{
				domain.Age18To22: factor(0.9),
				domain.Age23To27: factor(1.0),
				domain.Age28To35: factor(1.1),
				domain.Age36Plus: factor(1.2),
			},
			// Couples are not exactly x2 thanks to economies of scale.
			FamilyStatus: map[domain.FamilyStatus]decimal.Decimal{
				domain.FamilySingle: factor(1.0),
				domain.FamilyCouple: factor(1.7),
				domain.FamilyFamily: factor(2.3),
			},
			EnglishLevel: map[domain.EnglishLevel]decimal.Decimal{
				domain.EnglishBasic:        factor(1.2),
				domain.EnglishIntermediate: factor(1.1),
				domain.EnglishAdvanced:     factor(1.0),
			},
		},
	}
}
