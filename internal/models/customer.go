package models

// RTIBalance is the count of returnable transport items currently out with a
// customer, by kind.
type RTIBalance struct {
	Pallets int `json:"pallets"`
	Crates  int `json:"crates"`
}

type Customer struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	CreditLimit      float64    `json:"creditLimit"`
	CurrentBalance   float64    `json:"currentBalance"`
	RTIBalance       RTIBalance `json:"rtiBalance"`
	DeliveryCost     float64    `json:"deliveryCost"`
	LastOrderRevenue float64    `json:"lastOrderRevenue"`
}
