package entity

// Cents is an amount of money in hundredths of the currency unit.
type Cents int64

func (c Cents) Float() float64 {
	return float64(c) / 100
}
