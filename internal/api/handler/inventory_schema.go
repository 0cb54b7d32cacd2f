package handler

import "github.com/stockdesk/inventory-system/internal/core/domain"

// --- Request / Response types ---

// itemRequest carries the writable item fields for create and full-replace
// update. Requiredness of name/sku is enforced by the service so the exact
// rejection message stays in one place.
type itemRequest struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from the domain types so the JSON contract is not coupled to
// internal changes.

type itemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type listItemsResponse struct {
	Success bool           `json:"success"`
	Items   []itemResponse `json:"items"`
}

type createItemResponse struct {
	Success bool         `json:"success"`
	Item    itemResponse `json:"item"`
}

// messageResponse acknowledges a mutation with no payload beyond the message.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:       item.ID,
		Name:     item.Name,
		SKU:      item.SKU,
		Quantity: item.Quantity,
		Price:    item.Price,
	}
}

func toItemResponses(items []domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out
}
