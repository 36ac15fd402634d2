package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"bazaar/internal/domain/entity"
)

const msgProductNotFound = "Product/Business not found"

func productPath(businessID int64, productCode string) string {
	return businessPath(businessID) + "/products/" + url.PathEscape(productCode)
}

func imagePath(businessID int64, productCode string, imageID int64) string {
	return productPath(businessID, productCode) + "/images/" + strconv.FormatInt(imageID, 10)
}

func imageStatuses() map[int]string {
	return withToken(map[int]string{
		http.StatusForbidden:     msgNotAllowed,
		http.StatusNotAcceptable: msgProductNotFound,
	})
}

// CreateProduct adds a product to a business catalogue.
func (c *Client) CreateProduct(ctx context.Context, businessID int64, product *entity.CreateProduct) error {
	return c.do(ctx, call{
		op:     "create_product",
		method: http.MethodPost,
		path:   businessPath(businessID) + "/products",
		body:   product,
		statuses: withToken(map[int]string{
			http.StatusBadRequest: "Invalid parameters",
			http.StatusForbidden:  msgNotAllowed,
			http.StatusConflict:   "Product code unavailable",
		}),
	})
}

// GetProducts returns one page of a business catalogue.
func (c *Client) GetProducts(ctx context.Context, businessID int64, page entity.Page, orderBy entity.ProductOrderBy) ([]entity.Product, error) {
	var products []entity.Product

	err := c.do(ctx, call{
		op:     "get_products",
		method: http.MethodGet,
		path:   businessPath(businessID) + "/products",
		query:  page.Params(string(orderBy)),
		statuses: withToken(map[int]string{
			http.StatusForbidden:     "Not an admin of the business",
			http.StatusNotAcceptable: msgBusinessNotFound,
		}),
		schema:       schemaProducts,
		shapeMessage: "Response is not product array",
		out:          &products,
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductCount returns the size of a business catalogue.
func (c *Client) GetProductCount(ctx context.Context, businessID int64) (int, error) {
	return c.count(ctx, "get_product_count", businessPath(businessID)+"/products/count", nil, nil, "Response is not number")
}

// UploadProductImage sends image as the multipart field "file".
func (c *Client) UploadProductImage(ctx context.Context, businessID int64, productCode, filename string, image io.Reader) error {
	statuses := imageStatuses()
	statuses[http.StatusBadRequest] = "Invalid image"
	statuses[http.StatusRequestEntityTooLarge] = "Image too large"

	return c.do(ctx, call{
		op:       "upload_product_image",
		method:   http.MethodPost,
		path:     productPath(businessID, productCode) + "/images",
		file:     &filePart{field: "file", filename: filename, content: image},
		statuses: statuses,
	})
}

// MakeImagePrimary makes imageID the product's primary image.
func (c *Client) MakeImagePrimary(ctx context.Context, businessID int64, productCode string, imageID int64) error {
	return c.do(ctx, call{
		op:       "make_image_primary",
		method:   http.MethodPut,
		path:     imagePath(businessID, productCode, imageID) + "/makeprimary",
		statuses: imageStatuses(),
	})
}

// DeleteImage removes an image from a product.
func (c *Client) DeleteImage(ctx context.Context, businessID int64, productCode string, imageID int64) error {
	return c.do(ctx, call{
		op:       "delete_image",
		method:   http.MethodDelete,
		path:     imagePath(businessID, productCode, imageID),
		statuses: imageStatuses(),
	})
}
