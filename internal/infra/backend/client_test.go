package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	blobrepo "bazaar/internal/infra/persistence/blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer answers every request with status and body.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server, NewClient(server.URL, time.Second, nil, testLogger())
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func requireClientError(t *testing.T, err error) *domainerrors.ClientError {
	t.Helper()

	require.Error(t, err)
	clientErr, ok := domainerrors.AsClientError(err)
	require.True(t, ok, "expected *ClientError, got %T", err)

	return clientErr
}

func TestClient_StatusMessages(t *testing.T) {
	ctx := context.Background()
	card := &entity.CreateMarketplaceCard{CreatorID: 1, Section: entity.SectionWanted, Title: "Bike"}

	tests := []struct {
		name   string
		status int
		body   string
		invoke func(c *Client) error
		want   string
		kind   domainerrors.Kind
	}{
		{
			name:   "login bad credentials",
			status: http.StatusBadRequest,
			invoke: func(c *Client) error { _, err := c.Login(ctx, "a@b.com", "x"); return err },
			want:   "Invalid credentials",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "login unmapped",
			status: 999,
			invoke: func(c *Client) error { _, err := c.Login(ctx, "a@b.com", "x"); return err },
			want:   "Request failed: 999",
			kind:   domainerrors.KindUnmappedStatus,
		},
		{
			name:   "get user has no mapped statuses",
			status: http.StatusNotAcceptable,
			invoke: func(c *Client) error { _, err := c.GetUser(ctx, 7); return err },
			want:   "Request failed: 406",
			kind:   domainerrors.KindUnmappedStatus,
		},
		{
			name:   "create user email in use",
			status: http.StatusConflict,
			invoke: func(c *Client) error { return c.CreateUser(ctx, &entity.CreateUser{}) },
			want:   "Email in use",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "make admin token",
			status: http.StatusUnauthorized,
			invoke: func(c *Client) error { return c.MakeAdmin(ctx, 7) },
			want:   "Missing/Invalid access token",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "revoke admin missing user",
			status: http.StatusNotAcceptable,
			invoke: func(c *Client) error { return c.RevokeAdmin(ctx, 7) },
			want:   "User does not exist",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "create business backend message",
			status: http.StatusBadRequest,
			body:   `{"message":"Address is required"}`,
			invoke: func(c *Client) error { return c.CreateBusiness(ctx, &entity.CreateBusiness{}) },
			want:   "Address is required",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "create business without message",
			status: http.StatusInternalServerError,
			invoke: func(c *Client) error { return c.CreateBusiness(ctx, &entity.CreateBusiness{}) },
			want:   "Request failed: 500",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "get business not found",
			status: http.StatusNotAcceptable,
			invoke: func(c *Client) error { _, err := c.GetBusiness(ctx, 3); return err },
			want:   "Business not found",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "make business admin already admin",
			status: http.StatusBadRequest,
			invoke: func(c *Client) error { return c.MakeBusinessAdmin(ctx, 3, 7) },
			want:   "User doesn't exist or is already an admin",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "remove business admin forbidden",
			status: http.StatusForbidden,
			invoke: func(c *Client) error { return c.RemoveBusinessAdmin(ctx, 3, 7) },
			want:   "Current user cannot perform this action",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "create product code taken",
			status: http.StatusConflict,
			invoke: func(c *Client) error { return c.CreateProduct(ctx, 3, &entity.CreateProduct{}) },
			want:   "Product code unavailable",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "get products forbidden",
			status: http.StatusForbidden,
			invoke: func(c *Client) error {
				_, err := c.GetProducts(ctx, 3, entity.DefaultPage, entity.ProductOrderByName)
				return err
			},
			want: "Not an admin of the business",
			kind: domainerrors.KindMappedStatus,
		},
		{
			name:   "upload image too large",
			status: http.StatusRequestEntityTooLarge,
			invoke: func(c *Client) error {
				return c.UploadProductImage(ctx, 3, "BEANS", "beans.png", strings.NewReader("png"))
			},
			want: "Image too large",
			kind: domainerrors.KindMappedStatus,
		},
		{
			name:   "delete image not found",
			status: http.StatusNotAcceptable,
			invoke: func(c *Client) error { return c.DeleteImage(ctx, 3, "BEANS", 9) },
			want:   "Product/Business not found",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "inventory item forbidden",
			status: http.StatusForbidden,
			invoke: func(c *Client) error {
				_, err := c.CreateInventoryItem(ctx, 3, &entity.CreateInventoryItem{})
				return err
			},
			want: "Operation not permitted",
			kind: domainerrors.KindMappedStatus,
		},
		{
			name:   "inventory item backend message",
			status: http.StatusBadRequest,
			body:   `{"message":"Expiry date in the past"}`,
			invoke: func(c *Client) error {
				_, err := c.CreateInventoryItem(ctx, 3, &entity.CreateInventoryItem{})
				return err
			},
			want: "Request failed: Expiry date in the past",
			kind: domainerrors.KindMappedStatus,
		},
		{
			name:   "sale item invalid",
			status: http.StatusBadRequest,
			invoke: func(c *Client) error {
				_, err := c.CreateSaleItem(ctx, 3, &entity.CreateSaleItem{})
				return err
			},
			want: "Invalid data with the Sale Item",
			kind: domainerrors.KindMappedStatus,
		},
		{
			name:   "sales count missing business",
			status: http.StatusNotAcceptable,
			invoke: func(c *Client) error { _, err := c.GetBusinessSalesCount(ctx, 3); return err },
			want:   "The given business does not exist",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "keywords token",
			status: http.StatusUnauthorized,
			invoke: func(c *Client) error { _, err := c.GetKeywords(ctx); return err },
			want:   "Missing/Invalid access token",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "card bad format",
			status: http.StatusBadRequest,
			body:   `{"message":"Title too long"}`,
			invoke: func(c *Client) error { _, err := c.CreateMarketplaceCard(ctx, card); return err },
			want:   "Incorrect marketplace card format: Title too long",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "card for another user",
			status: http.StatusForbidden,
			invoke: func(c *Client) error { _, err := c.CreateMarketplaceCard(ctx, card); return err },
			want:   "A user cannot create a marketplace card for another user",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "card other status",
			status: http.StatusInternalServerError,
			body:   `{"message":"boom"}`,
			invoke: func(c *Client) error { _, err := c.CreateMarketplaceCard(ctx, card); return err },
			want:   "Request failed: boom",
			kind:   domainerrors.KindMappedStatus,
		},
		{
			name:   "cards unknown section",
			status: http.StatusBadRequest,
			invoke: func(c *Client) error {
				_, err := c.GetMarketplaceCardsBySection(ctx, "Lost", entity.DefaultPage, entity.CardOrderByCreated)
				return err
			},
			want: "The given section does not exist",
			kind: domainerrors.KindMappedStatus,
		},
		{
			name:   "card count unmapped",
			status: http.StatusUnauthorized,
			invoke: func(c *Client) error { _, err := c.GetMarketplaceCardCount(ctx, entity.SectionForSale); return err },
			want:   "Request failed: 401",
			kind:   domainerrors.KindUnmappedStatus,
		},
		{
			name:   "demo data user role",
			status: http.StatusForbidden,
			invoke: func(c *Client) error { return c.LoadDemoData(ctx) },
			want:   "Only admin accounts can perform demo actions",
			kind:   domainerrors.KindMappedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, respond(tt.status, tt.body))

			clientErr := requireClientError(t, tt.invoke(client))
			assert.Equal(t, tt.want, clientErr.Error())
			assert.Equal(t, tt.kind, clientErr.Kind())
			assert.Equal(t, tt.status, clientErr.Status())
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(respond(http.StatusOK, `{"userId":1}`))
	client := NewClient(server.URL, time.Second, nil, testLogger())
	server.Close()

	_, err := client.Login(context.Background(), "a@b.com", "pw")

	clientErr := requireClientError(t, err)
	assert.Equal(t, "Failed to reach backend", clientErr.Error())
	assert.Equal(t, domainerrors.KindTransport, clientErr.Kind())
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 50*time.Millisecond, nil, testLogger())

	err := client.LoadDemoData(context.Background())

	assert.Equal(t, "Failed to reach backend", requireClientError(t, err).Error())
}

const (
	userBody      = `{"id":7,"firstName":"Tim","lastName":"Tam","email":"tim@example.com","homeAddress":{"country":"NZ"}}`
	productBody   = `{"id":"BEANS","name":"Baked beans","images":[{"id":1,"filename":"b.png","thumbnailFilename":"b_t.png"}]}`
	inventoryBody = `{"id":4,"product":` + productBody + `,"quantity":3,"remainingQuantity":2,"expires":"2030-01-01"}`
	saleBody      = `{"id":5,"inventoryItem":` + inventoryBody + `,"quantity":1,"price":2.5,"created":"2026-01-01"}`
	keywordBody   = `{"id":2,"name":"Furniture","created":"2026-01-01"}`
	cardBody      = `{"id":9,"creator":` + userBody + `,"section":"Wanted","created":"2026-01-01","title":"Couch","keywords":[` + keywordBody + `]}`
	businessBody  = `{"id":3,"primaryAdministratorId":7,"name":"Beans","address":{"country":"NZ"},"businessType":"Retail Trade","administrators":[` + userBody + `]}`
)

func TestClient_GetUser_Shape(t *testing.T) {
	ctx := context.Background()

	t.Run("required fields only", func(t *testing.T) {
		_, client := newTestServer(t, respond(http.StatusOK, userBody))

		user, err := client.GetUser(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, &entity.User{
			ID:          7,
			FirstName:   "Tim",
			LastName:    "Tam",
			Email:       "tim@example.com",
			HomeAddress: entity.Location{Country: "NZ"},
		}, user)
	})

	t.Run("null optional fields", func(t *testing.T) {
		_, client := newTestServer(t, respond(http.StatusOK,
			`{"id":7,"firstName":"Tim","lastName":"Tam","email":"tim@example.com","nickname":null,
			"homeAddress":{"country":"NZ","city":null},"role":"globalApplicationAdmin",
			"businessesAdministered":[`+businessBody+`]}`))

		user, err := client.GetUser(ctx, 7)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
		assert.True(t, user.AdministersBusiness(3))
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"id":7,"firstName":"Tim","lastName":"Tam","homeAddress":{"country":"NZ"}}`},
		{name: "missing first name", body: `{"id":7,"lastName":"Tam","email":"a@b.com","homeAddress":{"country":"NZ"}}`},
		{name: "missing last name", body: `{"id":7,"firstName":"Tim","email":"a@b.com","homeAddress":{"country":"NZ"}}`},
		{name: "null first name", body: `{"id":7,"firstName":null,"lastName":"Tam","email":"a@b.com","homeAddress":{"country":"NZ"}}`},
		{name: "string id", body: `{"id":"7","firstName":"Tim","lastName":"Tam","email":"a@b.com","homeAddress":{"country":"NZ"}}`},
		{name: "missing country", body: `{"id":7,"firstName":"Tim","lastName":"Tam","email":"a@b.com","homeAddress":{}}`},
		{name: "unknown role", body: `{"id":7,"firstName":"Tim","lastName":"Tam","email":"a@b.com","homeAddress":{"country":"NZ"},"role":"root"}`},
		{name: "array", body: `[]`},
		{name: "not json", body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, respond(http.StatusOK, tt.body))

			_, err := client.GetUser(ctx, 7)

			clientErr := requireClientError(t, err)
			assert.Equal(t, "Response is not user", clientErr.Error())
			assert.Equal(t, domainerrors.KindMalformedResponse, clientErr.Kind())
		})
	}
}

func TestClient_ListShapes(t *testing.T) {
	ctx := context.Background()

	getProducts := func(c *Client) (int, error) {
		products, err := c.GetProducts(ctx, 3, entity.DefaultPage, entity.ProductOrderByName)
		return len(products), err
	}
	getInventory := func(c *Client) (int, error) {
		items, err := c.GetInventory(ctx, 3, entity.DefaultPage, entity.InventoryOrderByExpires)
		return len(items), err
	}
	getSales := func(c *Client) (int, error) {
		sales, err := c.GetBusinessSales(ctx, 3, entity.DefaultPage, entity.SaleOrderByCreated)
		return len(sales), err
	}
	getCards := func(c *Client) (int, error) {
		cards, err := c.GetMarketplaceCardsBySection(ctx, entity.SectionWanted, entity.DefaultPage, entity.CardOrderByCreated)
		return len(cards), err
	}
	getKeywords := func(c *Client) (int, error) {
		keywords, err := c.GetKeywords(ctx)
		return len(keywords), err
	}
	getBusiness := func(c *Client) (int, error) {
		business, err := c.GetBusiness(ctx, 3)
		if business == nil {
			return 0, err
		}
		return 1, err
	}
	searchUsers := func(c *Client) (int, error) {
		users, err := c.SearchUsers(ctx, "tim", entity.DefaultPage, entity.UserOrderByEmail)
		return len(users), err
	}

	tests := []struct {
		name    string
		invoke  func(c *Client) (int, error)
		body    string
		wantLen int
		wantErr string
	}{
		{name: "products", invoke: getProducts, body: `[` + productBody + `]`, wantLen: 1},
		{name: "products missing images", invoke: getProducts, body: `[{"id":"BEANS","name":"Baked beans"}]`, wantErr: "Response is not product array"},
		{name: "products numeric code", invoke: getProducts, body: `[{"id":4,"name":"Baked beans","images":[]}]`, wantErr: "Response is not product array"},
		{name: "products object", invoke: getProducts, body: productBody, wantErr: "Response is not product array"},

		{name: "inventory", invoke: getInventory, body: `[` + inventoryBody + `]`, wantLen: 1},
		{name: "inventory missing expires", invoke: getInventory,
			body:    `[{"id":4,"product":` + productBody + `,"quantity":3,"remainingQuantity":2}]`,
			wantErr: "Response is not inventory array"},
		{name: "inventory string quantity", invoke: getInventory,
			body:    `[{"id":4,"product":` + productBody + `,"quantity":"3","remainingQuantity":2,"expires":"2030-01-01"}]`,
			wantErr: "Response is not inventory array"},

		{name: "sales", invoke: getSales, body: `[` + saleBody + `]`, wantLen: 1},
		{name: "sales missing price", invoke: getSales,
			body:    `[{"id":5,"inventoryItem":` + inventoryBody + `,"quantity":1,"created":"2026-01-01"}]`,
			wantErr: "Response is not Sale array"},
		{name: "sales bad nested product", invoke: getSales,
			body:    `[{"id":5,"inventoryItem":{"id":4,"product":{"id":"X"},"quantity":3,"remainingQuantity":2,"expires":"2030-01-01"},"quantity":1,"price":2.5,"created":"2026-01-01"}]`,
			wantErr: "Response is not Sale array"},

		{name: "cards", invoke: getCards, body: `[` + cardBody + `]`, wantLen: 1},
		{name: "cards missing title", invoke: getCards,
			body:    `[{"id":9,"creator":` + userBody + `,"section":"Wanted","created":"2026-01-01","keywords":[]}]`,
			wantErr: "Response is not card array"},
		{name: "cards unknown section", invoke: getCards,
			body:    `[{"id":9,"creator":` + userBody + `,"section":"Lost","created":"2026-01-01","title":"Couch","keywords":[]}]`,
			wantErr: "Response is not card array"},

		{name: "keywords", invoke: getKeywords, body: `[` + keywordBody + `]`, wantLen: 1},
		{name: "keywords missing created", invoke: getKeywords, body: `[{"id":2,"name":"Furniture"}]`, wantErr: "Response is not a keyword"},
		{name: "keywords string id", invoke: getKeywords, body: `[{"id":"2","name":"Furniture","created":"2026-01-01"}]`, wantErr: "Response is not a keyword"},

		{name: "business", invoke: getBusiness, body: businessBody, wantLen: 1},
		{name: "business missing name", invoke: getBusiness,
			body:    `{"id":3,"primaryAdministratorId":7,"address":{"country":"NZ"},"businessType":"Retail Trade"}`,
			wantErr: "Invalid response type"},
		{name: "business unknown type", invoke: getBusiness,
			body:    `{"id":3,"primaryAdministratorId":7,"name":"Beans","address":{"country":"NZ"},"businessType":"Mining"}`,
			wantErr: "Invalid response type"},

		{name: "users", invoke: searchUsers, body: `[` + userBody + `]`, wantLen: 1},
		{name: "users missing first name", invoke: searchUsers,
			body:    `[{"id":7,"lastName":"Tam","email":"a@b.com","homeAddress":{"country":"NZ"}}]`,
			wantErr: "Response is not user array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, respond(http.StatusOK, tt.body))

			n, err := tt.invoke(client)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLen, n)

				return
			}

			clientErr := requireClientError(t, err)
			assert.Equal(t, tt.wantErr, clientErr.Error())
			assert.Equal(t, domainerrors.KindMalformedResponse, clientErr.Kind())
			assert.Zero(t, n)
		})
	}
}

func TestClient_LoginThenNamelessUser(t *testing.T) {
	ctx := context.Background()
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			respond(http.StatusOK, `{"userId":7}`)(w, r)

			return
		}
		respond(http.StatusOK, `{"id":7,"email":"tim@example.com","homeAddress":{"country":"NZ"}}`)(w, r)
	})

	id, err := client.Login(ctx, "tim@example.com", "pw")
	require.NoError(t, err)

	user, err := client.GetUser(ctx, id)

	assert.Nil(t, user)
	assert.Equal(t, "Response is not user", requireClientError(t, err).Error())
}

func TestClient_GetProducts_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("business not found", func(t *testing.T) {
		_, client := newTestServer(t, respond(http.StatusNotAcceptable, ""))

		_, err := client.GetProducts(ctx, 3, entity.DefaultPage, entity.ProductOrderByName)

		clientErr := requireClientError(t, err)
		assert.Equal(t, "Business not found", clientErr.Error())
		assert.Equal(t, domainerrors.KindMappedStatus, clientErr.Kind())
	})

	t.Run("unmapped status", func(t *testing.T) {
		_, client := newTestServer(t, respond(999, ""))

		_, err := client.GetProducts(ctx, 3, entity.DefaultPage, entity.ProductOrderByName)

		assert.Equal(t, "Request failed: 999", requireClientError(t, err).Error())
	})

	t.Run("no response", func(t *testing.T) {
		server := httptest.NewServer(respond(http.StatusOK, `[]`))
		client := NewClient(server.URL, time.Second, nil, testLogger())
		server.Close()

		_, err := client.GetProducts(ctx, 3, entity.DefaultPage, entity.ProductOrderByName)

		clientErr := requireClientError(t, err)
		assert.Equal(t, "Failed to reach backend", clientErr.Error())
		assert.Equal(t, domainerrors.KindTransport, clientErr.Kind())
	})
}

func TestClient_CreateMarketplaceCard_Response(t *testing.T) {
	ctx := context.Background()
	card := &entity.CreateMarketplaceCard{CreatorID: 1, Section: entity.SectionForSale, Title: "Couch", KeywordIDs: []int64{2}}

	t.Run("numeric id", func(t *testing.T) {
		var received entity.CreateMarketplaceCard
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/cards", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			respond(http.StatusCreated, `{"cardId":15}`)(w, r)
		})

		id, err := client.CreateMarketplaceCard(ctx, card)

		require.NoError(t, err)
		assert.Equal(t, int64(15), id)
		assert.Equal(t, *card, received)
	})

	for _, body := range []string{`{"cardId":"x"}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			_, client := newTestServer(t, respond(http.StatusCreated, body))

			_, err := client.CreateMarketplaceCard(ctx, card)

			assert.Equal(t, "Invalid response format", requireClientError(t, err).Error())
		})
	}
}

func TestClient_Login_InvalidResponse(t *testing.T) {
	_, client := newTestServer(t, respond(http.StatusOK, `{"userId":"seven"}`))

	_, err := client.Login(context.Background(), "a@b.com", "pw")

	assert.Equal(t, "Invalid response", requireClientError(t, err).Error())
}

func TestClient_CreateInventoryItem_EmptyBody(t *testing.T) {
	_, client := newTestServer(t, respond(http.StatusCreated, ""))

	id, err := client.CreateInventoryItem(context.Background(), 3, &entity.CreateInventoryItem{ProductID: "BEANS"})

	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestClient_PaginationParams(t *testing.T) {
	var query url.Values
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		respond(http.StatusOK, `[]`)(w, r)
	})

	users, err := client.SearchUsers(context.Background(), "tim",
		entity.Page{Page: 2, ResultsPerPage: 5, Reverse: true}, entity.UserOrderByEmail)

	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "5", query.Get("resultsPerPage"))
	assert.Equal(t, "email", query.Get("orderBy"))
	assert.Equal(t, "true", query.Get("reverse"))
	assert.Equal(t, "tim", query.Get("searchQuery"))

	_, err = client.GetMarketplaceCardsBySection(context.Background(), entity.SectionExchange,
		entity.DefaultPage, entity.CardOrderByTitle)

	require.NoError(t, err)
	assert.Equal(t, "Exchange", query.Get("section"))
	assert.Equal(t, "false", query.Get("reverse"))
}

func TestClient_Counts(t *testing.T) {
	_, client := newTestServer(t, respond(http.StatusOK, `{"count":42}`))

	count, err := client.GetProductCount(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 42, count)

	_, client = newTestServer(t, respond(http.StatusOK, `{"count":"many"}`))

	_, err = client.GetBusinessSalesCount(context.Background(), 3)
	assert.Equal(t, "Response is not a number", requireClientError(t, err).Error())
}

func TestClient_UploadProductImage(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businesses/3/products/BEANS-1/images", r.URL.Path)

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		content, _ := io.ReadAll(file)
		assert.Equal(t, "beans.png", header.Filename)
		assert.Equal(t, "png-bytes", string(content))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.UploadProductImage(context.Background(), 3, "BEANS-1", "beans.png", strings.NewReader("png-bytes"))

	assert.NoError(t, err)
}

func TestClient_PersistsCredentials(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	repo := blobrepo.NewKeyValueRepository(bucket)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "AUTHTOKEN", Value: "secret", Path: "/", MaxAge: 3600})
			respond(http.StatusOK, `{"userId":7}`)(w, r)
		default:
			cookie, err := r.Cookie("AUTHTOKEN")
			if err != nil || cookie.Value != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(server.Close)

	origin, err := url.Parse(server.URL)
	require.NoError(t, err)

	jar, err := newPersistentJar(origin, repo, testLogger())
	require.NoError(t, err)

	client := NewClient(server.URL, time.Second, jar, testLogger())
	id, err := client.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	// A fresh process restores the session from the store.
	restored, err := newPersistentJar(origin, repo, testLogger())
	require.NoError(t, err)
	require.NoError(t, restored.Restore(ctx))

	err = NewClient(server.URL, time.Second, restored, testLogger()).LoadDemoData(ctx)
	assert.NoError(t, err)

	// Without the store the backend rejects the call.
	err = NewClient(server.URL, time.Second, nil, testLogger()).LoadDemoData(ctx)
	assert.Equal(t, "Missing/Invalid access token", requireClientError(t, err).Error())
}
