package models

import "time"

// Vehicle is the Vehicles collection document. The VIN is the document key;
// the registration number is a plain attribute resolved by an indexed scan.
type Vehicle struct {
	VIN       string    `bson:"_id" json:"vin"`
	Make      string    `bson:"make" json:"make"`
	Model     string    `bson:"model" json:"model"`
	Color     string    `bson:"color" json:"color"`
	RegNo     string    `bson:"regNo" json:"regNo"`
	Owner     string    `bson:"owner" json:"owner"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// VehicleSummary is the projection returned when a vehicle is added:
// no VIN, no timestamps.
type VehicleSummary struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Color string `json:"color"`
	RegNo string `json:"regNo"`
	Owner string `json:"owner"`
}

func (v *Vehicle) Summary() VehicleSummary {
	return VehicleSummary{
		Make:  v.Make,
		Model: v.Model,
		Color: v.Color,
		RegNo: v.RegNo,
		Owner: v.Owner,
	}
}
