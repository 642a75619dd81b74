package entity

import "atlas/pkg/models"

const (
	MembershipPrice Cents = 999

	MinCustomMemberships = 11
	MaxCustomMemberships = 50
)

// PresetMemberships are the fixed amounts offered for a donation to one user.
var PresetMemberships = []int{1, 3, 5, 10}

type BulkTier struct {
	Min      int
	Max      int
	Price    Cents
	Discount int
}

var BulkTiers = []BulkTier{
	{Min: 11, Max: 20, Price: 949, Discount: 5},
	{Min: 21, Max: 35, Price: 899, Discount: 10},
	{Min: 36, Max: 50, Price: 849, Discount: 15},
}

type Quote struct {
	Kind          models.DonationKind `json:"kind"`
	Memberships   int                 `json:"memberships"`
	UnitPrice     float64             `json:"unitPrice"`
	TotalPrice    float64             `json:"totalPrice"`
	Discount      int                 `json:"discount"`
	OriginalPrice float64             `json:"originalPrice"`
	Savings       float64             `json:"savings"`
}

// SpecificQuote prices a donation to a single user at the base price.
// Amounts other than the presets must fall in the custom range.
func SpecificQuote(amount int) (Quote, bool) {
	if !isPreset(amount) && (amount < MinCustomMemberships || amount > MaxCustomMemberships) {
		return Quote{}, false
	}
	total := MembershipPrice * Cents(amount)
	return Quote{
		Kind:          models.DonationSpecific,
		Memberships:   amount,
		UnitPrice:     MembershipPrice.Float(),
		TotalPrice:    total.Float(),
		OriginalPrice: total.Float(),
	}, true
}

// BulkQuote prices a bulk donation with the tier discount.
func BulkQuote(amount int) (Quote, bool) {
	for _, tier := range BulkTiers {
		if amount < tier.Min || amount > tier.Max {
			continue
		}
		total := tier.Price * Cents(amount)
		original := MembershipPrice * Cents(amount)
		return Quote{
			Kind:          models.DonationBulk,
			Memberships:   amount,
			UnitPrice:     tier.Price.Float(),
			TotalPrice:    total.Float(),
			Discount:      tier.Discount,
			OriginalPrice: original.Float(),
			Savings:       (original - total).Float(),
		}, true
	}
	return Quote{}, false
}

func isPreset(amount int) bool {
	for _, p := range PresetMemberships {
		if p == amount {
			return true
		}
	}
	return false
}
