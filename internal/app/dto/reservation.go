package dto

import (
	domainavailability "hotelbooking/internal/domain/availability"
)

type ReservationConfirmation struct {
	ReservationID   string   `json:"reservation_id"`
	Message         string   `json:"message"`
	FinalPrice      float64  `json:"final_price"`
	RoomType        string   `json:"room_type"`
	Description     string   `json:"description"`
	Services        []string `json:"services"`
	Subtotal        int64    `json:"subtotal"`
	PricingStrategy string   `json:"pricing_strategy"`
	Currency        string   `json:"currency"`
}

type Availability struct {
	RoomType  string `json:"room_type"`
	Available bool   `json:"available"`
}

type InventoryItem struct {
	RoomType  string `json:"room_type"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

type Inventory struct {
	Items []InventoryItem `json:"items"`
}

func MapInventory(counts []domainavailability.Count) Inventory {
	items := make([]InventoryItem, 0, len(counts))
	for _, c := range counts {
		items = append(items, InventoryItem{
			RoomType:  c.RoomType.String(),
			Remaining: c.Remaining,
			Available: c.Remaining > 0,
		})
	}
	return Inventory{Items: items}
}
