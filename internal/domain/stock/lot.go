package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot is a batch or serial-number record. The backend tracks up to three
// expiry-related dates per lot; which ones are filled depends on how the
// product's tracking is configured.
type Lot struct {
	ID         RecordID  `json:"id"`
	Name       string    `json:"name"`
	ProductRef EntityRef `json:"product_id"`

	LifeDate    Timestamp `json:"life_date"`
	UseDate     Timestamp `json:"use_date"`
	RemovalDate Timestamp `json:"removal_date"`

	CreatedOn Timestamp `json:"create_date"`
}

// ExpiryDate resolves the lot's effective expiry: the first of life date,
// use date, and removal date that is present. Returns the unset Timestamp
// when the lot carries no expiry at all.
func (l *Lot) ExpiryDate() Timestamp {
	if l == nil {
		return Timestamp{}
	}
	for _, candidate := range []Timestamp{l.LifeDate, l.UseDate, l.RemovalDate} {
		if candidate.Valid() {
			return candidate
		}
	}
	return Timestamp{}
}

// LotStatus is the derived lifecycle status of a lot. It is recomputed from
// the lot's aggregated state on every evaluation and never stored.
type LotStatus string

const (
	LotStatusActive   LotStatus = "active"
	LotStatusReserved LotStatus = "reserved"
	LotStatusExpired  LotStatus = "expired"
	LotStatusDepleted LotStatus = "depleted"
)

// ClassifyLotStatus derives a lot's status from its aggregated on-hand
// quantity, reserved quantity, and effective expiry date. Precedence, first
// match wins:
//
//  1. on-hand <= 0: depleted, regardless of expiry or reservation
//  2. expiry present and strictly before now: expired
//  3. reserved > 0: reserved
//  4. otherwise: active
func ClassifyLotStatus(onHand, reserved decimal.Decimal, expiry Timestamp, now time.Time) LotStatus {
	switch {
	case onHand.LessThanOrEqual(decimal.Zero):
		return LotStatusDepleted
	case expiry.Before(now):
		return LotStatusExpired
	case reserved.GreaterThan(decimal.Zero):
		return LotStatusReserved
	default:
		return LotStatusActive
	}
}
