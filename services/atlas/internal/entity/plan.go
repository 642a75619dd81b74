package entity

import "atlas/pkg/models"

const TrialDays = 7

// Plan is a premium billing option with its tax already computed.
type Plan struct {
	Cycle models.BillingCycle `json:"cycle"`
	Price float64             `json:"price"`
	Tax   float64             `json:"tax"`
	Total float64             `json:"total"`
}

var plans = map[models.BillingCycle]struct{ price, tax Cents }{
	models.BillingMonthly: {price: 999, tax: 150},
	models.BillingYearly:  {price: 9999, tax: 1500},
}

func Plans() []Plan {
	return []Plan{
		mustPlan(models.BillingMonthly),
		mustPlan(models.BillingYearly),
	}
}

// PlanFor returns the paid plan for a cycle. Trial is not a paid plan.
func PlanFor(cycle models.BillingCycle) (Plan, bool) {
	p, ok := plans[cycle]
	if !ok {
		return Plan{}, false
	}
	return Plan{
		Cycle: cycle,
		Price: p.price.Float(),
		Tax:   p.tax.Float(),
		Total: (p.price + p.tax).Float(),
	}, true
}

func mustPlan(cycle models.BillingCycle) Plan {
	p, _ := PlanFor(cycle)
	return p
}
