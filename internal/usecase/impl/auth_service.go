// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	sellerRepo   repository.SellerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SellerRepo   repository.SellerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		sellerRepo:   params.SellerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new seller account. The username check and the insert
// run in one transaction; the unique constraint on username catches
// whatever slips between them.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting seller registration", slog.String("username", input.Username))

	var registeredSeller *entity.Seller
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		_, err := sellerRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrUsernameConflict
		}
		if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		seller := &entity.Seller{
			Username:     input.Username,
			PasswordHash: hash,
			Location:     input.Location,
		}
		if err := sellerRepo.Create(ctx, seller); err != nil {
			return err
		}

		registeredSeller = seller

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Seller registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Seller registration completed", slog.Any("sellerID", registeredSeller.ID))

	return &usecase.RegisterOutput{Seller: registeredSeller}, nil
}

// Login verifies the presented credentials and issues a signed access token.
// An unknown username and a wrong password produce the same error, so the
// response never reveals which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	seller, err := srv.sellerRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			srv.log(ctx).Info("Login attempt for unknown username")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up seller for login")
	}

	if !srv.hasher.Check(input.Password, seller.PasswordHash) {
		srv.log(ctx).Info("Login attempt with wrong password", slog.Any("sellerID", seller.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(seller.ID, seller.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("sellerID", seller.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Login completed", slog.Any("sellerID", seller.ID))

	return &usecase.LoginOutput{AccessToken: token}, nil
}
