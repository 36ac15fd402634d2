package backend

import (
	"context"
	"net/http"
)

// LoadDemoData asks the backend to seed its demo dataset. Admin only.
func (c *Client) LoadDemoData(ctx context.Context) error {
	return c.do(ctx, call{
		op:     "load_demo_data",
		method: http.MethodPut,
		path:   "/demo/load",
		statuses: withToken(map[int]string{
			http.StatusForbidden: "Only admin accounts can perform demo actions",
		}),
	})
}
