package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
	"github.com/jhoicas/almacen/pkg/jwt"
)

// SessionConfig configuración para firmar los tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Principal identidad de la sesión activa.
type Principal struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin indica si la sesión pertenece a un administrador.
func (p Principal) IsAdmin() bool { return p.Role == entity.RoleAdmin }

// AuthUseCase casos de uso de autenticación: login, sesión y arranque del admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cfg      SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, cfg: cfg}
}

// Login verifica username/password y genera el token de sesión.
// Usuario inexistente y password incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ParseSession valida el token y recarga el usuario desde el repositorio.
// Token inválido o usuario inexistente devuelven domain.ErrUnauthorized.
func (uc *AuthUseCase) ParseSession(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return &Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// BootstrapAdmin crea el usuario "admin" con la password dada.
// Si ya existe devuelve domain.ErrAlreadyExists y no modifica nada.
func (uc *AuthUseCase) BootstrapAdmin(ctx context.Context, password string) (*dto.UserResponse, error) {
	if password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(ctx, entity.AdminUsername)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     entity.AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	// Dos /init_admin concurrentes: el índice único de username decide
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
