package backend

import (
	"context"
	"net/http"

	"bazaar/internal/domain/entity"
)

const msgNoSuchBusiness = "The given business does not exist"

// CreateSaleItem lists part of an inventory item for sale.
func (c *Client) CreateSaleItem(ctx context.Context, businessID int64, sale *entity.CreateSaleItem) (int64, error) {
	var resp entity.CreateSaleItemResponse

	err := c.do(ctx, call{
		op:     "create_sale_item",
		method: http.MethodPost,
		path:   businessPath(businessID) + "/listings",
		body:   sale,
		statuses: map[int]string{
			http.StatusBadRequest: "Invalid data with the Sale Item",
			http.StatusForbidden:  msgNotAllowed,
		},
		schema:       schemaListingMade,
		shapeMessage: "Invalid response format",
		optionalBody: true,
		out:          &resp,
	})
	if err != nil {
		return 0, err
	}

	return resp.ListingID, nil
}

// GetBusinessSales returns one page of a business's listings.
func (c *Client) GetBusinessSales(ctx context.Context, businessID int64, page entity.Page, orderBy entity.SaleOrderBy) ([]entity.Sale, error) {
	var sales []entity.Sale

	err := c.do(ctx, call{
		op:           "get_business_sales",
		method:       http.MethodGet,
		path:         businessPath(businessID) + "/listings",
		query:        page.Params(string(orderBy)),
		statuses:     salesStatuses(),
		schema:       schemaSales,
		shapeMessage: "Response is not Sale array",
		out:          &sales,
	})
	if err != nil {
		return nil, err
	}

	return sales, nil
}

// GetBusinessSalesCount returns the number of listings of a business.
func (c *Client) GetBusinessSalesCount(ctx context.Context, businessID int64) (int, error) {
	return c.count(ctx, "get_business_sales_count", businessPath(businessID)+"/listings/count", nil, salesStatuses(), "Response is not a number")
}

func salesStatuses() map[int]string {
	return withToken(map[int]string{
		http.StatusNotAcceptable: msgNoSuchBusiness,
	})
}
