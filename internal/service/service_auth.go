package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mgavrilov/blackraven/internal/config"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/internal/validators"
	"github.com/mgavrilov/blackraven/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles analyst registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// analyst accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// validator enforces required account fields before hashing or lookup.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		validator:      validators.NewIntelValidator(),
		logger:         logger,
	}
}

// RegisterAnalyst creates a new analyst account.
//
// It validates that both Login and Password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// The plaintext password is dropped before it can reach the store.
//
// Returns the persisted account (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterAnalyst(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.Password = ""
	user.PasswordHash = string(hash)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing analyst.
//
// It looks up the account by login and compares the supplied plaintext
// password against the stored bcrypt hash.
//
// Returns the authenticated account or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. account
//     not found, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given analyst, with the configured
// issuer and lifetime and the user ID in the subject claim.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates the signature, issuer, and expiry of the given token
// string and returns the parsed token with the analyst ID populated.
//
// Returns ErrTokenIsExpired for expired tokens so callers can distinguish
// them from malformed ones.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}

		log.Err(err).Msg("token parsing failed")
		return models.Token{}, fmt.Errorf("token parsing failed: %w", err)
	}

	return token, nil
}
