package models

// SupplyPriority ranks how urgently a supply need should be delivered.
type SupplyPriority string

const (
	PriorityHigh   SupplyPriority = "High"
	PriorityMedium SupplyPriority = "Medium"
	PriorityLow    SupplyPriority = "Low"
)

type SupplyNeed struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Category     string         `json:"category" yaml:"category"`
	Quantity     string         `json:"quantity" yaml:"quantity"`
	Priority     SupplyPriority `json:"priority" yaml:"priority"`
	LastDelivery string         `json:"last_delivery" yaml:"last_delivery"`
	Scheduled    bool           `json:"scheduled" yaml:"scheduled"`
}

type DeliveryItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity string `json:"quantity" yaml:"quantity"`
}

type Delivery struct {
	ID     string         `json:"id" yaml:"id"`
	Date   string         `json:"date" yaml:"date"`
	Items  []DeliveryItem `json:"items" yaml:"items"`
	Status string         `json:"status" yaml:"status"`
}
