package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"brokeria-dashboard-be/internal/config"
	"brokeria-dashboard-be/internal/dto"
	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/pkg/apperror"
	"brokeria-dashboard-be/internal/pkg/logger"
	"brokeria-dashboard-be/internal/repository/contract"
	"brokeria-dashboard-be/internal/repository/specification"
	"brokeria-dashboard-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const authModule = "AuthService"

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, caller *dto.TokenClaims, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Verify(ctx context.Context, token string) (*dto.TokenClaims, error)
	Logout(ctx context.Context, claims *dto.TokenClaims) error
	Me(ctx context.Context, claims *dto.TokenClaims) (*dto.UserSummary, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type sessionClaims struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Nome     string `json:"nome"`
	jwt.RegisteredClaims
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	denylist   contract.TokenDenylist
	cfg        config.AuthConfig
	log        logger.ILogger

	now      func() time.Time
	hashCost int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, denylist contract.TokenDenylist, cfg config.AuthConfig, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		denylist:   denylist,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
		hashCost:   bcrypt.DefaultCost,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		_ = bcrypt.CompareHashAndPassword(s.placeholderHash(), []byte(req.Password))
		return nil, apperror.ErrInvalidCredentials
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, apperror.Upstream("find user", err)
	}

	if user == nil {
		// Burn a comparison so an unknown username costs the same as a wrong password.
		_ = bcrypt.CompareHashAndPassword(s.placeholderHash(), []byte(req.Password))
		s.log.Warn(authModule, "Login failed", map[string]interface{}{"username": req.Username})
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn(authModule, "Login failed", map[string]interface{}{"username": req.Username})
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info(authModule, "Login successful", map[string]interface{}{"user_id": user.Id, "role": user.Role})

	return &dto.LoginResponse{
		Token: token,
		User:  toUserSummary(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, caller *dto.TokenClaims, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("register requires admin role: %w", apperror.ErrForbidden)
	}

	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.UserRoleUser
	}
	if !role.Valid() {
		return nil, apperror.Validation("role must be admin or user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, apperror.Validation("password cannot be hashed")
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Nome:         req.Nome,
		Role:         role,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		return nil, apperror.Upstream("create user", err)
	}

	s.log.Info(authModule, "User registered", map[string]interface{}{
		"user_id":    user.Id,
		"role":       user.Role,
		"created_by": caller.UserId,
	})

	return &dto.RegisterResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*dto.TokenClaims, error) {
	if token == "" {
		return nil, apperror.ErrMissingToken
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: token has no id", apperror.ErrInvalidToken)
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperror.Upstream("check denylist", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", apperror.ErrInvalidToken)
	}

	return &dto.TokenClaims{
		UserId:    claims.Id,
		Username:  claims.Username,
		Role:      claims.Role,
		Nome:      claims.Nome,
		TokenId:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *dto.TokenClaims) error {
	if claims == nil || claims.TokenId == "" {
		return apperror.ErrMissingToken
	}
	if err := s.denylist.Revoke(ctx, claims.TokenId, claims.ExpiresAt); err != nil {
		return apperror.Upstream("revoke token", err)
	}
	s.log.Info(authModule, "Token revoked", map[string]interface{}{"user_id": claims.UserId})
	return nil
}

func (s *authService) Me(ctx context.Context, claims *dto.TokenClaims) (*dto.UserSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserID{ID: claims.UserId})
	if err != nil {
		return nil, apperror.Upstream("find user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", claims.UserId, apperror.ErrNotFound)
	}
	summary := toUserSummary(user)
	return &summary, nil
}

// EnsureDefaultAdmin creates the bootstrap admin when it is missing. An
// existing admin keeps its password unless a reset was explicitly requested.
// The lookup and the write share one transaction.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	if s.cfg.AdminPassword == "" {
		s.log.Warn(authModule, "ADMIN_BOOTSTRAP_PASSWORD not set, skipping admin bootstrap", nil)
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Upstream("begin admin bootstrap", err)
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: s.cfg.AdminUsername})
	if err != nil {
		return apperror.Upstream("find admin", err)
	}

	if existing != nil && !s.cfg.AdminResetPassword {
		s.log.Info(authModule, "Bootstrap admin already present", map[string]interface{}{"username": existing.Username})
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if existing == nil {
		admin := &entity.User{
			Username:     s.cfg.AdminUsername,
			PasswordHash: string(hash),
			Nome:         "Administrador",
			Role:         entity.UserRoleAdmin,
		}
		if err := uow.UserRepository().Create(ctx, admin); err != nil {
			if errors.Is(err, apperror.ErrConflict) {
				// Another instance created it first.
				return nil
			}
			return apperror.Upstream("create admin", err)
		}
		if err := uow.Commit(); err != nil {
			return apperror.Upstream("commit admin bootstrap", err)
		}
		s.log.Info(authModule, "Bootstrap admin created", map[string]interface{}{"username": admin.Username})
		return nil
	}

	if err := uow.UserRepository().UpdatePassword(ctx, existing.Id, string(hash)); err != nil {
		return apperror.Upstream("reset admin password", err)
	}
	if err := uow.Commit(); err != nil {
		return apperror.Upstream("commit admin bootstrap", err)
	}
	s.log.Warn(authModule, "Bootstrap admin password reset", map[string]interface{}{"username": existing.Username})
	return nil
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	issuedAt := s.now()
	claims := sessionClaims{
		Id:       user.Id,
		Username: user.Username,
		Role:     string(user.Role),
		Nome:     user.Nome,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.Id, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.cfg.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) placeholderHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.hashCost)
	})
	return s.dummyHash
}

func toUserSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{
		Username: u.Username,
		Nome:     u.Nome,
		Role:     string(u.Role),
	}
}
