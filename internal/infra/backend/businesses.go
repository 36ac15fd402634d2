package backend

import (
	"context"
	"net/http"
	"strconv"

	"bazaar/internal/domain/entity"
)

const msgBusinessNotFound = "Business not found"

func businessPath(businessID int64) string {
	return "/businesses/" + strconv.FormatInt(businessID, 10)
}

// CreateBusiness registers a business with the current user as primary administrator.
func (c *Client) CreateBusiness(ctx context.Context, business *entity.CreateBusiness) error {
	return c.do(ctx, call{
		op:       "create_business",
		method:   http.MethodPost,
		path:     "/businesses",
		body:     business,
		statuses: withToken(map[int]string{}),
		other:    orStatus,
	})
}

// GetBusiness fetches a business and its administrators.
func (c *Client) GetBusiness(ctx context.Context, businessID int64) (*entity.Business, error) {
	var business entity.Business

	err := c.do(ctx, call{
		op:     "get_business",
		method: http.MethodGet,
		path:   businessPath(businessID),
		statuses: withToken(map[int]string{
			http.StatusNotAcceptable: msgBusinessNotFound,
		}),
		schema:       schemaBusiness,
		shapeMessage: "Invalid response type",
		out:          &business,
	})
	if err != nil {
		return nil, err
	}

	return &business, nil
}

// MakeBusinessAdmin adds userID to the business's administrators.
func (c *Client) MakeBusinessAdmin(ctx context.Context, businessID, userID int64) error {
	return c.do(ctx, call{
		op:     "make_business_admin",
		method: http.MethodPut,
		path:   businessPath(businessID) + "/makeAdministrator",
		body:   entity.AdministratorRequest{UserID: userID},
		statuses: withToken(map[int]string{
			http.StatusBadRequest:    "User doesn't exist or is already an admin",
			http.StatusForbidden:     "Current user cannot perform this action",
			http.StatusNotAcceptable: msgBusinessNotFound,
		}),
	})
}

// RemoveBusinessAdmin removes userID from the business's administrators.
func (c *Client) RemoveBusinessAdmin(ctx context.Context, businessID, userID int64) error {
	return c.do(ctx, call{
		op:     "remove_business_admin",
		method: http.MethodPut,
		path:   businessPath(businessID) + "/removeAdministrator",
		body:   entity.AdministratorRequest{UserID: userID},
		statuses: withToken(map[int]string{
			http.StatusBadRequest:    "User doesn't exist or is not an admin",
			http.StatusForbidden:     "Current user cannot perform this action",
			http.StatusNotAcceptable: msgBusinessNotFound,
		}),
	})
}
