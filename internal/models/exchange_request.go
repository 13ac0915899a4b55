package models

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// TradeVehicle describes the vehicle a client wants to trade in. All fields
// are free text from the exchange form; nothing is validated against the
// inventory.
type TradeVehicle struct {
	Year    string `json:"year"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Mileage string `json:"mileage"`
	VIN     string `json:"vin,omitempty"`
}

type ExchangeRequest struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	UserName       string        `json:"user_name"`
	UserEmail      string        `json:"user_email"`
	ContactPhone   string        `json:"contact_phone"`
	CurrentVehicle TradeVehicle  `json:"current_vehicle"`
	DesiredVehicle string        `json:"desired_vehicle"`
	Status         RequestStatus `json:"status"`
	Date           time.Time     `json:"date"`
}
