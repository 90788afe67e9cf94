// Package domain contains the core types for the study-abroad budget planner.
package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// ProgramType identifies the academic program a student is enrolling in.
type ProgramType string

const (
	ProgramUndergraduate ProgramType = "undergraduate"
	ProgramGraduate      ProgramType = "graduate"
	ProgramPhD           ProgramType = "phd"
	ProgramCertificate   ProgramType = "certificate"
	ProgramLanguage      ProgramType = "language"
)

// FamilyStatus identifies who is traveling with the student.
type FamilyStatus string

const (
	FamilySingle FamilyStatus = "single"
	FamilyCouple FamilyStatus = "couple"
	FamilyFamily FamilyStatus = "family"
)

// EnglishLevel is the proficiency bucket derived from the four sub-skill scores.
type EnglishLevel string

const (
	EnglishBasic        EnglishLevel = "basic"
	EnglishIntermediate EnglishLevel = "intermediate"
	EnglishAdvanced     EnglishLevel = "advanced"
)

// AgeBracket is the spending-profile bucket derived from the student's age.
type AgeBracket string

const (
	Age18To22 AgeBracket = "18-22"
	Age23To27 AgeBracket = "23-27"
	Age28To35 AgeBracket = "28-35"
	Age36Plus AgeBracket = "36+"
)

const (
	// DefaultAge is assumed when the wizard never captured an age.
	DefaultAge = 25
	// DefaultEnglishScore is assumed for any missing sub-skill score (1-10 scale).
	DefaultEnglishScore = 5
)

// EnglishSkills holds the four self-assessed sub-skill scores, each 1-10.
type EnglishSkills struct {
	Speaking  int `json:"speaking" yaml:"speaking"`
	Reading   int `json:"reading" yaml:"reading"`
	Listening int `json:"listening" yaml:"listening"`
	Writing   int `json:"writing" yaml:"writing"`
}

// Profile is the consolidated set of wizard answers driving one analysis.
// Numeric fields left at zero take documented defaults via Normalize.
type Profile struct {
	Country        string          `json:"country" yaml:"country"`
	Region         string          `json:"region" yaml:"region"`
	City           string          `json:"city" yaml:"city"`
	ProgramType    ProgramType     `json:"programType" yaml:"programType"`
	HousingType    string          `json:"housingType" yaml:"housingType"`
	TransportType  string          `json:"transportType" yaml:"transportType"`
	FamilyStatus   FamilyStatus    `json:"familyStatus" yaml:"familyStatus"`
	Age            int             `json:"age" yaml:"age"`
	English        EnglishSkills   `json:"english" yaml:"english"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome" yaml:"monthlyIncome"`
	CurrentSavings decimal.Decimal `json:"currentSavings" yaml:"currentSavings"`
	WorkHours      int             `json:"workHours" yaml:"workHours"`
}

// Normalize returns a copy with documented defaults filled in for absent
// optional answers. The original wizard allows skipping steps, so the engine
// must never see a zero age or zero sub-skill scores.
func (p Profile) Normalize() Profile {
	if p.Age == 0 {
		p.Age = DefaultAge
	}
	if p.FamilyStatus == "" {
		p.FamilyStatus = FamilySingle
	}
	if p.English.Speaking == 0 {
		p.English.Speaking = DefaultEnglishScore
	}
	if p.English.Reading == 0 {
		p.English.Reading = DefaultEnglishScore
	}
	if p.English.Listening == 0 {
		p.English.Listening = DefaultEnglishScore
	}
	if p.English.Writing == 0 {
		p.English.Writing = DefaultEnglishScore
	}
	return p
}

// EnglishLevel buckets the rounded average of the four sub-skill scores.
func (s EnglishSkills) Level() EnglishLevel {
	avg := float64(s.Speaking+s.Reading+s.Listening+s.Writing) / 4.0
	switch rounded := math.Round(avg); {
	case rounded >= 8:
		return EnglishAdvanced
	case rounded >= 6:
		return EnglishIntermediate
	default:
		return EnglishBasic
	}
}

// AgeBracketFor maps an age to its spending-profile bucket.
func AgeBracketFor(age int) AgeBracket {
	switch {
	case age <= 22:
		return Age18To22
	case age <= 27:
		return Age23To27
	case age <= 35:
		return Age28To35
	default:
		return Age36Plus
	}
}
