package leads

import (
	"strings"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/validate"
)

type Step string

const (
	StepIntent       Step = "intent"
	StepPropertyType Step = "propertyType"
	StepPriceRange   Step = "priceRange"
	StepBedrooms     Step = "bedrooms"
	StepBathrooms    Step = "bathrooms"
	StepTimeline     Step = "timeline"
	StepContact      Step = "contact"
)

// PhonePlaceholder é o valor inicial do campo de telefone; não conta como preenchido.
const PhonePlaceholder = "+55 "

// Steps na ordem do wizard.
func Steps() []Step {
	return []Step{
		StepIntent,
		StepPropertyType,
		StepPriceRange,
		StepBedrooms,
		StepBathrooms,
		StepTimeline,
		StepContact,
	}
}

type priceRange struct {
	min, max float64
}

var (
	propertyTypes = map[string]string{
		"condo":         "Condo",
		"single-family": "Single family home",
		"townhouse":     "Townhouse",
	}
	priceRanges = map[string]priceRange{
		"below-1m": {max: 1_000_000},
		"1m-3m":    {min: 1_000_000, max: 3_000_000},
		"3m-5m":    {min: 3_000_000, max: 5_000_000},
		"5m-plus":  {min: 5_000_000},
	}
	roomCounts = map[string]bool{"1": true, "2": true, "3": true, "4+": true}
	timelines  = map[string]string{"now": "Now", "soon": "Soon", "later": "Later"}
)

func phoneFilled(phone string) bool {
	return phone != PhonePlaceholder && strings.TrimSpace(phone) != ""
}

func IsStepValid(lead entities.Lead, step Step) bool {
	switch step {
	case StepIntent:
		return lead.Intent == entities.LeadBuy || lead.Intent == entities.LeadSell
	case StepPropertyType:
		_, ok := propertyTypes[lead.PropertyType]
		return ok
	case StepPriceRange:
		_, ok := priceRanges[lead.PriceRange]
		return ok
	case StepBedrooms:
		return roomCounts[lead.Bedrooms]
	case StepBathrooms:
		return roomCounts[lead.Bathrooms]
	case StepTimeline:
		_, ok := timelines[lead.Timeline]
		return ok
	case StepContact:
		return strings.TrimSpace(lead.Name) != "" &&
			validate.Email(lead.Email) &&
			phoneFilled(lead.Phone)
	default:
		return false
	}
}

// InvalidSteps devolve os passos que ainda bloqueiam o envio, na ordem do wizard.
func InvalidSteps(lead entities.Lead) []Step {
	var invalid []Step
	for _, step := range Steps() {
		if !IsStepValid(lead, step) {
			invalid = append(invalid, step)
		}
	}
	return invalid
}
