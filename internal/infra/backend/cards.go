package backend

import (
	"context"
	"net/http"

	"bazaar/internal/domain/entity"
)

// GetKeywords returns every marketplace keyword.
func (c *Client) GetKeywords(ctx context.Context) ([]entity.Keyword, error) {
	var keywords []entity.Keyword

	err := c.do(ctx, call{
		op:           "get_keywords",
		method:       http.MethodGet,
		path:         "/keywords/search",
		statuses:     withToken(map[int]string{}),
		schema:       schemaKeywords,
		shapeMessage: "Response is not a keyword",
		out:          &keywords,
	})
	if err != nil {
		return nil, err
	}

	return keywords, nil
}

// CreateMarketplaceCard posts a card and returns its id.
func (c *Client) CreateMarketplaceCard(ctx context.Context, card *entity.CreateMarketplaceCard) (int64, error) {
	var resp struct {
		CardID int64 `json:"cardId"`
	}

	err := c.do(ctx, call{
		op:     "create_marketplace_card",
		method: http.MethodPost,
		path:   "/cards",
		body:   card,
		statuses: withToken(map[int]string{
			http.StatusForbidden: "A user cannot create a marketplace card for another user",
		}),
		other: func(status int, message string) string {
			if status == http.StatusBadRequest {
				return "Incorrect marketplace card format: " + message
			}
			if message == "" {
				return orStatus(status, "")
			}

			return "Request failed: " + message
		},
		schema:       schemaCardCreated,
		shapeMessage: "Invalid response format",
		out:          &resp,
	})
	if err != nil {
		return 0, err
	}

	return resp.CardID, nil
}

// GetMarketplaceCardCount returns the number of cards in a section.
func (c *Client) GetMarketplaceCardCount(ctx context.Context, section entity.Section) (int, error) {
	return c.count(ctx, "get_marketplace_card_count", "/cards/count",
		map[string]string{"section": string(section)}, nil, "Response is not number")
}

// GetMarketplaceCardsBySection returns one page of a marketplace section.
func (c *Client) GetMarketplaceCardsBySection(
	ctx context.Context,
	section entity.Section,
	page entity.Page,
	orderBy entity.CardOrderBy,
) ([]entity.MarketplaceCard, error) {
	params := page.Params(string(orderBy))
	params["section"] = string(section)

	var cards []entity.MarketplaceCard

	err := c.do(ctx, call{
		op:     "get_marketplace_cards",
		method: http.MethodGet,
		path:   "/cards",
		query:  params,
		statuses: withToken(map[int]string{
			http.StatusBadRequest: "The given section does not exist",
		}),
		schema:       schemaCards,
		shapeMessage: "Response is not card array",
		out:          &cards,
	})
	if err != nil {
		return nil, err
	}

	return cards, nil
}
