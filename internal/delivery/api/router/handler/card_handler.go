package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	Cards     service.CardBackend
	Demo      service.DemoBackend
	QRCode    service.QRCodeService
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// CardHandler serves the community marketplace
type CardHandler struct {
	cards     service.CardBackend
	demo      service.DemoBackend
	qrCode    service.QRCodeService
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cards:     params.Cards,
		demo:      params.Demo,
		qrCode:    params.QRCode,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ListCardsQuery selects a page of one marketplace section
type ListCardsQuery struct {
	Section        entity.Section     `query:"section" validate:"required,section"`
	Page           int                `query:"page" validate:"omitempty,gte=1"`
	ResultsPerPage int                `query:"resultsPerPage" validate:"omitempty,gte=1,lte=100"`
	OrderBy        entity.CardOrderBy `query:"orderBy" validate:"omitempty,oneof=created title closes creatorFirstName creatorLastName"`
	Reverse        bool               `query:"reverse"`
}

// CardView is a marketplace card with the labels shown on the card list
type CardView struct {
	entity.MarketplaceCard

	CreatorName     string `json:"creatorName"`
	CreatorLocation string `json:"creatorLocation"`
	CreatedOn       string `json:"createdOn,omitempty"`
}

// newCardView shows the creator's partial address only.
func newCardView(card entity.MarketplaceCard, logger *slog.Logger) CardView {
	view := CardView{
		MarketplaceCard: card,
		CreatorName:     card.Creator.DisplayName(),
		CreatorLocation: card.Creator.HomeAddress.Format(false),
	}

	if card.Created != "" {
		createdOn, err := util.FormatDateString(card.Created)
		if err != nil {
			logger.Debug("Card has unreadable creation date",
				slog.Int64("card_id", card.ID),
				slog.String("created", card.Created),
			)
		}
		view.CreatedOn = createdOn
	}

	return view
}

// CountCardsQuery names the section to count
type CountCardsQuery struct {
	Section entity.Section `query:"section" validate:"required,section"`
}

// ListCards returns a page of marketplace cards
func (h *CardHandler) ListCards(c echo.Context) error {
	var q ListCardsQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card query")
	}

	if err := c.Validate(&q); err != nil {
		return response.ValidationError(c, err)
	}

	if q.OrderBy == "" {
		q.OrderBy = entity.CardOrderByCreated
	}

	page := entity.Page{Page: q.Page, ResultsPerPage: q.ResultsPerPage, Reverse: q.Reverse}.Normalize()

	cards, err := h.cards.GetMarketplaceCardsBySection(c.Request().Context(), q.Section, page, q.OrderBy)
	if err != nil {
		return err
	}

	logger := deliverycontext.RequestLogger(c, h.logger)
	views := make([]CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, newCardView(card, logger))
	}

	return response.Success(c, http.StatusOK, views)
}

// CountCards returns the number of cards in a section
func (h *CardHandler) CountCards(c echo.Context) error {
	var q CountCardsQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card query")
	}

	if err := c.Validate(&q); err != nil {
		return response.ValidationError(c, err)
	}

	count, err := h.cards.GetMarketplaceCardCount(c.Request().Context(), q.Section)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count})
}

// CreateCard posts a card for the current user unless another creator is named
func (h *CardHandler) CreateCard(c echo.Context) error {
	state := h.sessionUC.State()
	if state.User == nil {
		return response.HandleAppError(c, domainerrors.ErrNotLoggedIn)
	}

	var req entity.CreateMarketplaceCard
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid marketplace card input")
	}

	if req.CreatorID == 0 {
		req.CreatorID = state.User.ID
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cardID, err := h.cards.CreateMarketplaceCard(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	deliverycontext.RequestLogger(c, h.logger).Info("Marketplace card created",
		slog.Int64("card_id", cardID),
		slog.Int64("creator_id", req.CreatorID),
	)

	return response.Success(c, http.StatusCreated, map[string]int64{"cardId": cardID})
}

// CardQRCode renders the share code of a card as PNG
func (h *CardHandler) CardQRCode(c echo.Context) error {
	cardID, err := strconv.ParseInt(c.QueryParam("cardId"), 10, 64)
	if err != nil || cardID <= 0 {
		return response.BadRequest(c, "INVALID_CARD_ID", "cardId must be a positive integer")
	}

	png, err := h.qrCode.GenerateCardQR(cardID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListKeywords returns every marketplace keyword
func (h *CardHandler) ListKeywords(c echo.Context) error {
	keywords, err := h.cards.GetKeywords(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, keywords)
}

// LoadDemoData seeds the backend. Only global administrators may call it.
func (h *CardHandler) LoadDemoData(c echo.Context) error {
	user := h.sessionUC.State().User
	if user == nil {
		return response.HandleAppError(c, domainerrors.ErrNotLoggedIn)
	}

	if !user.IsAdmin() {
		return response.HandleAppError(c, domainerrors.ErrAdminRequired)
	}

	if err := h.demo.LoadDemoData(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "loaded"})
}
