package models

import "time"

type DonationKind string

const (
	DonationSpecific DonationKind = "specific"
	DonationBulk     DonationKind = "bulk"
)

// Donation is one entry of the membership donation ledger.
type Donation struct {
	ID            string       `json:"id"`
	DonorID       string       `json:"donorId"`
	RecipientID   string       `json:"recipientId,omitempty"`
	RecipientName string       `json:"recipientName,omitempty"`
	Kind          DonationKind `json:"kind"`
	Memberships   int          `json:"memberships"`
	UnitPrice     float64      `json:"unitPrice"`
	TotalPrice    float64      `json:"totalPrice"`
	Discount      int          `json:"discount"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func (d *Donation) AssignID(next func() string) {
	if d.ID == "" {
		d.ID = next()
	}
}
