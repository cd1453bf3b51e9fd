package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// MenuHandler serves menu reads. The real product backs this with the
// hosted database; here it serves seed data because the endpoint exists
// to exercise the admission gate, not the menu plumbing.
type MenuHandler struct {
	menus map[string]*GetMenuResponse
}

// NewMenuHandler creates a menu handler with seed menus.
func NewMenuHandler() *MenuHandler {
	h := &MenuHandler{menus: make(map[string]*GetMenuResponse)}

	lunch := &GetMenuResponse{}
	lunch.Body.ID = "bistro-lunch"
	lunch.Body.Name = "Lunch Menu"
	lunch.Body.UpdatedAt = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	lunch.Body.Items = []MenuItem{
		{Name: "Margherita", PriceCents: 1250, Category: "mains"},
		{Name: "Caesar Salad", PriceCents: 950, Category: "starters"},
		{Name: "Tiramisu", PriceCents: 700, Category: "desserts"},
	}
	h.menus[lunch.Body.ID] = lunch

	return h
}

// GetMenu returns a menu by id.
func (h *MenuHandler) GetMenu(_ context.Context, req *GetMenuRequest) (*GetMenuResponse, error) {
	menu, ok := h.menus[req.MenuID]
	if !ok {
		return nil, huma.Error404NotFound("menu not found")
	}

	return menu, nil
}
