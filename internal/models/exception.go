package models

import "time"

type ExceptionType string

const (
	ExcTemperature ExceptionType = "temperature"
	ExcDelay       ExceptionType = "delay"
	ExcCreditHold  ExceptionType = "credit_hold"
	ExcDamage      ExceptionType = "damage"
	ExcMissingItem ExceptionType = "missing_item"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// RelatedEntity points an exception back at the driver, order, route or
// customer it concerns. The reference is by ID only; it may dangle.
type RelatedEntity struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Exception struct {
	ID            string        `json:"id"`
	Type          ExceptionType `json:"type"`
	Severity      Severity      `json:"severity"`
	Message       string        `json:"message"`
	Timestamp     time.Time     `json:"timestamp"`
	RelatedEntity RelatedEntity `json:"relatedEntity"`
	Resolved      bool          `json:"resolved"`
}
