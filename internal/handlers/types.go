package handlers

import "time"

// MenuItem is a single dish on a menu.
type MenuItem struct {
	Name       string `doc:"Dish name"           example:"Margherita"      json:"name"`
	PriceCents int64  `doc:"Price in cents"      example:"1250"            json:"priceCents"`
	Category   string `doc:"Menu section"        example:"mains"           json:"category"`
}

// GetMenuRequest is the request for fetching a menu.
type GetMenuRequest struct {
	MenuID string `doc:"The menu identifier" example:"bistro-lunch" path:"menuID"`
}

// GetMenuResponse is the response for a fetched menu.
type GetMenuResponse struct {
	Body struct {
		ID        string     `doc:"The menu identifier" example:"bistro-lunch" json:"id"`
		Name      string     `doc:"Display name"        example:"Lunch Menu"   json:"name"`
		Items     []MenuItem `doc:"Menu items"          json:"items"`
		UpdatedAt time.Time  `doc:"Last update time"    json:"updatedAt"`
	}
}

// ReactivateSubscriptionResponse is the response for a subscription
// reactivation request.
type ReactivateSubscriptionResponse struct {
	Body struct {
		Status string `doc:"Reactivation status" example:"scheduled" json:"status"`
	}
}
