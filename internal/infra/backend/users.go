package backend

import (
	"context"
	"net/http"
	"strconv"

	"bazaar/internal/domain/entity"
)

// Login submits credentials. The backend answers with the user id and a session cookie.
func (c *Client) Login(ctx context.Context, email, password string) (int64, error) {
	var resp entity.LoginResponse

	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/login",
		body:   entity.LoginRequest{Email: email, Password: password},
		statuses: map[int]string{
			http.StatusBadRequest: "Invalid credentials",
		},
		schema:       schemaLogin,
		shapeMessage: "Invalid response",
		out:          &resp,
	})
	if err != nil {
		return 0, err
	}

	return resp.UserID, nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	var user entity.User

	err := c.do(ctx, call{
		op:           "get_user",
		method:       http.MethodGet,
		path:         "/users/" + strconv.FormatInt(userID, 10),
		schema:       schemaUser,
		shapeMessage: "Response is not user",
		out:          &user,
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SearchUsers returns one page of users matching query.
func (c *Client) SearchUsers(ctx context.Context, query string, page entity.Page, orderBy entity.UserOrderBy) ([]entity.User, error) {
	params := page.Params(string(orderBy))
	params["searchQuery"] = query

	var users []entity.User

	err := c.do(ctx, call{
		op:           "search_users",
		method:       http.MethodGet,
		path:         "/users/search",
		query:        params,
		schema:       schemaUsers,
		shapeMessage: "Response is not user array",
		out:          &users,
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// SearchUsersCount returns the number of users matching query.
func (c *Client) SearchUsersCount(ctx context.Context, query string) (int, error) {
	return c.count(ctx, "search_users_count", "/users/search/count", map[string]string{"searchQuery": query}, nil, "Response is not number")
}

// CreateUser registers a new account. The backend logs the new user in.
func (c *Client) CreateUser(ctx context.Context, user *entity.CreateUser) error {
	return c.do(ctx, call{
		op:     "create_user",
		method: http.MethodPost,
		path:   "/users",
		body:   user,
		statuses: map[int]string{
			http.StatusBadRequest: "Invalid create user request",
			http.StatusConflict:   "Email in use",
		},
	})
}

// MakeAdmin grants the global application admin role.
func (c *Client) MakeAdmin(ctx context.Context, userID int64) error {
	return c.do(ctx, call{
		op:       "make_admin",
		method:   http.MethodPut,
		path:     "/users/" + strconv.FormatInt(userID, 10) + "/makeAdmin",
		statuses: adminStatuses(),
	})
}

// RevokeAdmin removes the global application admin role.
func (c *Client) RevokeAdmin(ctx context.Context, userID int64) error {
	return c.do(ctx, call{
		op:       "revoke_admin",
		method:   http.MethodPut,
		path:     "/users/" + strconv.FormatInt(userID, 10) + "/revokeAdmin",
		statuses: adminStatuses(),
	})
}

func adminStatuses() map[int]string {
	return withToken(map[int]string{
		http.StatusForbidden:     msgNotAllowed,
		http.StatusNotAcceptable: "User does not exist",
	})
}

// count fetches a {"count": n} body.
func (c *Client) count(ctx context.Context, op, path string, query map[string]string, statuses map[int]string, shapeMessage string) (int, error) {
	var resp entity.CountResponse

	err := c.do(ctx, call{
		op:           op,
		method:       http.MethodGet,
		path:         path,
		query:        query,
		statuses:     statuses,
		schema:       schemaCount,
		shapeMessage: shapeMessage,
		out:          &resp,
	})
	if err != nil {
		return 0, err
	}

	return resp.Count, nil
}
