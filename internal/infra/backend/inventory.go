package backend

import (
	"context"
	"net/http"

	"bazaar/internal/domain/entity"
)

// GetInventory returns one page of a business inventory.
func (c *Client) GetInventory(ctx context.Context, businessID int64, page entity.Page, orderBy entity.InventoryOrderBy) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem

	err := c.do(ctx, call{
		op:     "get_inventory",
		method: http.MethodGet,
		path:   businessPath(businessID) + "/inventory",
		query:  page.Params(string(orderBy)),
		statuses: withToken(map[int]string{
			http.StatusForbidden:     "Not an admin of the business",
			http.StatusNotAcceptable: msgBusinessNotFound,
		}),
		schema:       schemaInventory,
		shapeMessage: "Response is not inventory array",
		out:          &items,
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetInventoryCount returns the number of inventory items of a business.
func (c *Client) GetInventoryCount(ctx context.Context, businessID int64) (int, error) {
	return c.count(ctx, "get_inventory_count", businessPath(businessID)+"/inventory/count", nil, nil, "Response is not number")
}

// CreateInventoryItem stocks a product. The returned id is zero when the backend sends none.
func (c *Client) CreateInventoryItem(ctx context.Context, businessID int64, item *entity.CreateInventoryItem) (int64, error) {
	var resp entity.CreateInventoryItemResponse

	err := c.do(ctx, call{
		op:     "create_inventory_item",
		method: http.MethodPost,
		path:   businessPath(businessID) + "/inventory",
		body:   item,
		statuses: map[int]string{
			http.StatusForbidden: msgNotAllowed,
		},
		other: func(status int, message string) string {
			if message == "" {
				return orStatus(status, "")
			}

			return "Request failed: " + message
		},
		schema:       schemaInventoryMade,
		shapeMessage: "Invalid response format",
		optionalBody: true,
		out:          &resp,
	})
	if err != nil {
		return 0, err
	}

	return resp.InventoryItemID, nil
}
