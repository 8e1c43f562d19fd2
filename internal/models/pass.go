package models

import "time"

const (
	PassStatusPending  = "0"
	PassStatusApproved = "1"
)

// Pass is the Passes collection document, keyed by a generated id.
// A pass starts pending and is approved at most once.
type Pass struct {
	ID          string    `bson:"_id" json:"passid"`
	Owner       string    `bson:"owner" json:"owner"`
	RegNo       string    `bson:"regNo" json:"regNo"`
	Make        string    `bson:"make" json:"make"`
	Model       string    `bson:"model" json:"model"`
	Role        string    `bson:"role" json:"role"`
	Institution string    `bson:"institution" json:"institution"`
	Status      string    `bson:"status" json:"status"`
	QRCode      string    `bson:"qrCode" json:"qrCode"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt   time.Time `bson:"expiresAt" json:"expiresAt"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// PassSummary is the projection returned when a pass is created:
// no timestamps.
type PassSummary struct {
	ID          string `json:"passid"`
	Owner       string `json:"owner"`
	RegNo       string `json:"regNo"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Role        string `json:"role"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
	QRCode      string `json:"qrCode"`
}

func (p *Pass) Summary() PassSummary {
	return PassSummary{
		ID:          p.ID,
		Owner:       p.Owner,
		RegNo:       p.RegNo,
		Make:        p.Make,
		Model:       p.Model,
		Role:        p.Role,
		Institution: p.Institution,
		Status:      p.Status,
		QRCode:      p.QRCode,
	}
}
