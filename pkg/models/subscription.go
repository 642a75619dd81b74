package models

import "time"

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
	BillingTrial   BillingCycle = "trial"
)

type SubscriptionStatus string

const (
	SubscriptionTrial  SubscriptionStatus = "trial"
	SubscriptionActive SubscriptionStatus = "active"
)

// Subscription is a user's premium membership.
type Subscription struct {
	UserID    string             `json:"userId"`
	Plan      BillingCycle       `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	Amount    float64            `json:"amount"`
	StartedAt time.Time          `json:"startedAt"`
	ExpiresAt time.Time          `json:"expiresAt"`
	TrialUsed bool               `json:"trialUsed"`
}

func (s Subscription) ActiveAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
