// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/pkg/errors"
)

// legacyUserCookie is an older spelling of the user cookie, cleared on every login.
const legacyUserCookie = "USER"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	backend service.SessionBackend
	cookies *util.CookieJar
	logger  *slog.Logger

	mu    sync.RWMutex
	state entity.SessionState

	// dispatchMu orders mutations and their notifications together.
	dispatchMu sync.Mutex

	observersMu sync.Mutex
	observers   map[int]func(entity.SessionState)
	nextID      int
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	backend service.SessionBackend,
	cookies *util.CookieJar,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		backend:   backend,
		cookies:   cookies,
		logger:    logger,
		observers: make(map[int]func(entity.SessionState)),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates, fetches the full user and makes them current.
func (srv *sessionService) Login(ctx context.Context, email, password string) error {
	userID, err := srv.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user, err := srv.backend.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID))

	return srv.SetUser(ctx, user)
}

// SetUser makes user current, acting as themselves.
func (srv *sessionService) SetUser(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is required")
	}

	for _, name := range []string{legacyUserCookie, util.CookieUser} {
		if err := srv.cookies.DeleteCookie(ctx, name); err != nil {
			return errors.Wrap(domainerrors.ErrCookieStoreFailed, err.Error())
		}
	}

	if err := srv.cookies.SetCookie(ctx, util.CookieUser, strconv.FormatInt(user.ID, 10)); err != nil {
		return errors.Wrap(domainerrors.ErrCookieStoreFailed, err.Error())
	}

	role := entity.ActingAsUser(user.ID)
	srv.update(func(s *entity.SessionState) {
		u := *user
		s.User = &u
		s.ActiveRole = &role
	})

	return nil
}

// Restore logs the user back in from the user cookie, then adopts the role cookie
// when it names the user or a business they administer.
func (srv *sessionService) Restore(ctx context.Context) {
	logger := srv.log(ctx)

	value, found, err := srv.cookies.CookieValue(ctx, util.CookieUser)
	if err != nil {
		logger.Debug("Failed to read user cookie", slog.Any("error", err))

		return
	}
	if !found {
		return
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logger.Debug("Ignoring malformed user cookie", slog.String("value", value))

		return
	}

	user, err := srv.backend.GetUser(ctx, userID)
	if err != nil {
		logger.Debug("Automatic login failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)

		return
	}

	if err := srv.SetUser(ctx, user); err != nil {
		logger.Warn("Failed to restore user", slog.Any("error", err))

		return
	}

	srv.restoreRole(ctx, user)
}

func (srv *sessionService) restoreRole(ctx context.Context, user *entity.User) {
	logger := srv.log(ctx)

	value, found, err := srv.cookies.CookieValue(ctx, util.CookieRole)
	if err != nil || !found {
		return
	}

	role, err := entity.DecodeActiveRole(value)
	if err != nil {
		logger.Warn("Ignoring role cookie", slog.String("error", err.Error()))

		return
	}

	switch {
	case role.Type == entity.RoleTypeUser && role.ID == user.ID:
	case role.Type == entity.RoleTypeBusiness && user.AdministersBusiness(role.ID):
	default:
		logger.Warn("Stored role not available to user, acting as user",
			slog.Int64("user_id", user.ID),
			slog.String("role_type", string(role.Type)),
			slog.Int64("role_id", role.ID),
		)

		return
	}

	srv.update(func(s *entity.SessionState) {
		s.ActiveRole = &role
	})
}

// Logout forgets the user. The role cookie is kept.
func (srv *sessionService) Logout(ctx context.Context) error {
	err := srv.cookies.DeleteCookie(ctx, util.CookieUser)

	srv.update(func(s *entity.SessionState) {
		s.User = nil
		s.ActiveRole = nil
	})

	if err != nil {
		return errors.Wrap(domainerrors.ErrCookieStoreFailed, err.Error())
	}

	return nil
}

// SetRole persists role and makes it active.
func (srv *sessionService) SetRole(ctx context.Context, role entity.ActiveRole) error {
	if !srv.IsLoggedIn() {
		return domainerrors.ErrNotLoggedIn
	}

	encoded, err := role.Encode()
	if err != nil {
		return err
	}

	if err := srv.cookies.SetCookie(ctx, util.CookieRole, encoded); err != nil {
		return errors.Wrap(domainerrors.ErrCookieStoreFailed, err.Error())
	}

	srv.update(func(s *entity.SessionState) {
		s.ActiveRole = &role
	})

	return nil
}

func (srv *sessionService) SetError(message string) {
	srv.update(func(s *entity.SessionState) {
		s.GlobalError = &message
	})
}

func (srv *sessionService) ClearError() {
	srv.update(func(s *entity.SessionState) {
		s.GlobalError = nil
	})
}

func (srv *sessionService) ShowCreateBusiness() {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateBusiness = true })
}

func (srv *sessionService) HideCreateBusiness() {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateBusiness = false })
}

func (srv *sessionService) ShowCreateProduct(businessID int64) {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateProduct = &businessID })
}

func (srv *sessionService) HideCreateProduct() {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateProduct = nil })
}

func (srv *sessionService) ShowCreateInventory(businessID int64) {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateInventory = &businessID })
}

func (srv *sessionService) HideCreateInventory() {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateInventory = nil })
}

func (srv *sessionService) ShowCreateSaleItem(dialog entity.SaleItemDialog) {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateSaleItem = &dialog })
}

func (srv *sessionService) HideCreateSaleItem() {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateSaleItem = nil })
}

func (srv *sessionService) ShowCreateMarketplaceCard(user *entity.User) {
	srv.update(func(s *entity.SessionState) {
		if user == nil {
			s.Dialogs.CreateMarketplaceCard = nil

			return
		}
		u := *user
		s.Dialogs.CreateMarketplaceCard = &u
	})
}

func (srv *sessionService) HideCreateMarketplaceCard() {
	srv.update(func(s *entity.SessionState) { s.Dialogs.CreateMarketplaceCard = nil })
}

// State returns a snapshot of the session.
func (srv *sessionService) State() entity.SessionState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state.Clone()
}

func (srv *sessionService) IsLoggedIn() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state.User != nil
}

func (srv *sessionService) Role() entity.Role {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state.User.ApplicationRole()
}

// Subscribe registers fn for every subsequent change.
func (srv *sessionService) Subscribe(fn func(entity.SessionState)) func() {
	srv.observersMu.Lock()
	defer srv.observersMu.Unlock()

	id := srv.nextID
	srv.nextID++
	srv.observers[id] = fn

	return func() {
		srv.observersMu.Lock()
		defer srv.observersMu.Unlock()

		delete(srv.observers, id)
	}
}

// update applies mutate and notifies observers before the next mutation starts,
// so every observer sees snapshots in the order they were made.
func (srv *sessionService) update(mutate func(*entity.SessionState)) {
	srv.dispatchMu.Lock()
	defer srv.dispatchMu.Unlock()

	srv.mu.Lock()
	mutate(&srv.state)
	snapshot := srv.state.Clone()
	srv.mu.Unlock()

	srv.observersMu.Lock()
	observers := make([]func(entity.SessionState), 0, len(srv.observers))
	for _, fn := range srv.observers {
		observers = append(observers, fn)
	}
	srv.observersMu.Unlock()

	for _, fn := range observers {
		fn(snapshot.Clone())
	}
}
