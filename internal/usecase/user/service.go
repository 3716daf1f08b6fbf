package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"fruitarians-api/internal/config"
	domainBuah "fruitarians-api/internal/domain/buah"
	domainUser "fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/logger"
	appErrors "fruitarians-api/pkg/errors"
	"fruitarians-api/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	msgInvalidListingRole = "Parameter Path Value Must Be toko/vendor"
	msgAccountNotFound    = "Error Get Data User!"
	msgStoreNotAuthorized = "User Not Authorized"
	msgBuahNotAuthorized  = "user not authorized"
	msgGetInfoFailed      = "Get Info Failed"
	msgEditInfoFailed     = "Edit Info Failed, User Not Valid!"
	msgUploadFailed       = "Edit Failed, Upload Pic Error!"
	msgImageTooLarge      = "file must not exceed 5 MB"
	msgImageNotImage      = "file must be an image"
	msgPasswordAccount    = "Auth Account Error, Failed change password"
	msgOldPasswordInvalid = "The Old Password Doesnt Match Your Account! Failed to Change Password!"
	msgResetUserNotFound  = "Failed Get Token, User Not Found!"
	msgResetTokenInvalid  = "The Token is not Valid!"
)

// Service implements user, store and vendor use cases
type Service struct {
	userRepo domainUser.Repository
	buahRepo domainBuah.Repository
	uploader domainUser.Uploader
	mailer   domainUser.Mailer
	config   *config.Config
}

// NewService creates a new user service
func NewService(
	userRepo domainUser.Repository,
	buahRepo domainBuah.Repository,
	uploader domainUser.Uploader,
	mailer domainUser.Mailer,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo: userRepo,
		buahRepo: buahRepo,
		uploader: uploader,
		mailer:   mailer,
		config:   cfg,
	}
}

func validationError(err error) error {
	return appErrors.NewAppError(appErrors.KindBadRequest, utils.ValidationMessage(err), err)
}

// ListByRole returns one page of the store or vendor directory, plus a random
// card drawn from the whole directory when withCard is set.
func (s *Service) ListByRole(ctx context.Context, role string, withCard bool, page, size int) (*DirectoryResult, error) {
	if !domainUser.IsListingRole(role) {
		return nil, appErrors.BadRequest(msgInvalidListingRole)
	}

	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s accounts: %w", role, err)
	}

	profiles := make([]PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, ToPublicProfile(u))
	}

	result := &DirectoryResult{Total: len(profiles)}
	if withCard {
		if card, ok := utils.SampleOne(profiles); ok {
			result.Card = &card
		}
	}
	result.Items = utils.Paginate(profiles, page, size)

	return result, nil
}

func (s *Service) GetAccountDetail(ctx context.Context, role, id string, page, size int) (*AccountDetailResult, error) {
	account, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.NotFound(msgAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account.Role != role || account.Role == domainUser.RoleUser {
		return nil, appErrors.NotFound(msgAccountNotFound)
	}

	detail := ToAccountDetail(account)
	if account.Role != domainUser.RoleToko {
		return &AccountDetailResult{Detail: detail}, nil
	}

	items, err := s.buahRepo.ListByCreator(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list store products: %w", err)
	}

	summaries := make([]BuahSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, ToBuahSummary(item))
	}

	return &AccountDetailResult{
		Detail: StoreDetail{
			AccountDetail: detail,
			Buah:          utils.Paginate(summaries, page, size),
		},
		IsStore:       true,
		TotalProducts: len(summaries),
	}, nil
}

// GetProductDetail loads the store and the product concurrently; the store
// check is applied first.
func (s *Service) GetProductDetail(ctx context.Context, storeID, buahID string) (*ProductDetail, error) {
	var (
		store    *domainUser.User
		item     *domainBuah.Buah
		storeErr error
		buahErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		store, storeErr = s.userRepo.GetByID(gctx, storeID)
		return nil
	})
	g.Go(func() error {
		item, buahErr = s.buahRepo.GetByID(gctx, buahID)
		return nil
	})
	_ = g.Wait()

	if storeErr != nil && !errors.Is(storeErr, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get store: %w", storeErr)
	}
	if store == nil || store.Role != domainUser.RoleToko {
		return nil, appErrors.Unauthorized(msgStoreNotAuthorized)
	}

	if buahErr != nil && !errors.Is(buahErr, domainBuah.ErrBuahNotFound) {
		return nil, fmt.Errorf("failed to get buah: %w", buahErr)
	}
	if item == nil || item.CreatorID != storeID {
		return nil, appErrors.Unauthorized(msgBuahNotAuthorized)
	}

	return &ProductDetail{
		Toko: ToStoreSummary(store),
		Buah: ToBuahDetail(item),
	}, nil
}

func (s *Service) GetInfo(ctx context.Context, userID string) (*ProfileInfo, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.Unauthorized(msgGetInfoFailed)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	info := ToProfileInfo(u)
	return &info, nil
}

func (s *Service) ChangeInfo(ctx context.Context, userID string, req *ChangeInfoRequest) (*ChangeInfoResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.Unauthorized(msgEditInfoFailed)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Attachments from plain users are dropped unread.
	if u.Role != domainUser.RoleUser && req.Image != nil {
		if err := req.Image.validate(); err != nil {
			return nil, err
		}
	}

	u.Name = req.Name
	u.Address = domainUser.Address{
		Country: req.Negara,
		City:    req.Kota,
		Detail:  req.DeskripsiAlamat,
	}
	u.Phone = utils.NormalizePhone(req.Telepon)

	if u.Role != domainUser.RoleUser {
		description := req.Deskripsi
		u.Description = &description
		u.OperatingHours = &domainUser.OperatingHours{
			OpenTime:  req.JamBuka,
			CloseTime: req.JamTutup,
			StartDay:  req.HariBukaAwal,
			EndDay:    req.HariBukaAkhir,
		}

		if req.Image != nil {
			upload := domainUser.ImageUpload{
				UserID:      u.ID,
				Role:        u.Role,
				Filename:    req.Image.Filename,
				ContentType: req.Image.ContentType,
				Data:        req.Image.Data,
				Replace:     u.ProfileImage != nil,
			}
			if u.ProfileImage != nil {
				upload.PreviousURL = *u.ProfileImage
			}

			url, err := s.uploader.Upload(ctx, upload)
			if err != nil {
				logger.Warn("Profile image upload failed",
					zap.String("user_id", u.ID),
					zap.String("event", "profile_image_upload_failed"),
					zap.Error(err),
				)
				return nil, appErrors.NewAppError(appErrors.KindBadRequest, msgUploadFailed, errors.Join(domainUser.ErrUploadFailed, err))
			}
			u.ProfileImage = &url
		}
	}

	u.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.Unauthorized(msgEditInfoFailed)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.Info("User profile updated",
		zap.String("user_id", u.ID),
		zap.String("role", u.Role),
		zap.Bool("image_changed", req.Image != nil && u.Role != domainUser.RoleUser),
		zap.String("event", "profile_updated"),
	)

	resp := ToChangeInfoResponse(u)
	return &resp, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(err)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return appErrors.Unauthorized(msgPasswordAccount)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !utils.CheckPassword(u.PasswordHashed, req.PasswordLama) {
		logger.Warn("Password change with wrong current password",
			zap.String("user_id", u.ID),
			zap.String("event", "password_change_failed"),
		)
		return appErrors.Unauthorized(msgOldPasswordInvalid)
	}

	hashed, err := utils.HashPassword(req.PasswordBaru)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHashed = hashed
	u.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return appErrors.Unauthorized(msgPasswordAccount)
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password changed",
		zap.String("user_id", u.ID),
		zap.String("event", "password_changed"),
	)
	return nil
}

// IssueResetToken stores a fresh nonce on the account, which invalidates any
// earlier reset token, and mails the signed token to the owner.
func (s *Service) IssueResetToken(ctx context.Context, req *ForgetPasswordRequest) (*ResetTokenResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Reset token requested for unknown email",
				zap.String("email", req.Email),
				zap.String("event", "reset_token_user_not_found"),
			)
			return nil, appErrors.Unauthorized(msgResetUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	nonce, err := utils.GenerateNonce()
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateResetToken(u.ID, u.Email, nonce, s.config.JWT.Secret, s.config.JWT.ResetTTL())
	if err != nil {
		return nil, err
	}

	u.ResetNonce = &nonce
	u.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to store reset nonce: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, domainUser.Recipient{Email: u.Email, Name: u.Name}, token); err != nil {
		return nil, fmt.Errorf("failed to deliver reset token: %w", err)
	}

	logger.Info("Password reset token issued",
		zap.String("user_id", u.ID),
		zap.String("event", "reset_token_issued"),
	)

	return &ResetTokenResponse{
		Token: token,
		User:  AccountRef{Email: u.Email, ID: u.ID},
	}, nil
}

// RedeemResetToken sets a new password when the token's id, email and nonce
// all match the stored account. Every mismatch yields the same error.
func (s *Service) RedeemResetToken(ctx context.Context, req *RedeemResetRequest) (*AccountRef, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	invalid := appErrors.NewAppError(appErrors.KindUnauthorized, msgResetTokenInvalid, domainUser.ErrTokenInvalid)

	claims, err := utils.ValidateResetToken(req.ChangePasswordToken, s.config.JWT.Secret)
	if err != nil {
		return nil, invalid
	}

	u, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if u.ID != claims.UserID || u.Email != claims.Email || !nonceMatches(u.ResetNonce, claims.Token) {
		logger.Warn("Reset token rejected",
			zap.String("user_id", u.ID),
			zap.String("event", "reset_token_rejected"),
		)
		return nil, invalid
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHashed = hashed
	u.ResetNonce = nil
	u.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset completed",
		zap.String("user_id", u.ID),
		zap.String("event", "password_reset_completed"),
	)

	return &AccountRef{Email: u.Email, ID: u.ID}, nil
}

func nonceMatches(stored *string, claimed string) bool {
	if stored == nil || claimed == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*stored), []byte(claimed)) == 1
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.BadRequest(err.Error())
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		Email:          strings.ToLower(req.Email),
		PasswordHashed: hashedPassword,
		Name:           req.Name,
		Phone:          utils.NormalizePhone(req.Telepon),
		Address: domainUser.Address{
			Country: req.Negara,
			City:    req.Kota,
			Detail:  req.DeskripsiAlamat,
		},
		Role: req.Role,
	}
	if u.IsMerchant() {
		empty := ""
		u.Description = &empty
		u.OperatingHours = &domainUser.OperatingHours{}
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			logger.Warn("Registration attempt with existing email",
				zap.String("email", u.Email),
				zap.String("event", "registration_failed_duplicate_email"),
			)
			return nil, appErrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, expiresAt, err := utils.GenerateAccessToken(u.ID, u.Email, u.Role, s.config.JWT.Secret, s.config.JWT.AccessTTL())
	if err != nil {
		return nil, err
	}

	logger.Info("User registered successfully",
		zap.String("user_id", u.ID),
		zap.String("email", u.Email),
		zap.String("role", u.Role),
		zap.String("event", "user_registered"),
	)

	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: ToProfileInfo(u)}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "user_not_found"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", u.ID),
			zap.String("event", "invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateAccessToken(u.ID, u.Email, u.Role, s.config.JWT.Secret, s.config.JWT.AccessTTL())
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		zap.String("user_id", u.ID),
		zap.String("event", "user_logged_in"),
	)

	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: ToProfileInfo(u)}, nil
}
