package models

import "time"

// Email is the message record carried on the mail-incoming channel so the
// presentation layer can render simulated deliveries.
type Email struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	From      string    `json:"from"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}
