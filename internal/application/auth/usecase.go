package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: registro, login, perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está tomado. El rol
// siempre arranca como user; promover a admin es una operación aparte.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := uc.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	name := in.DisplayName
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  name,
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CurrentUser devuelve el usuario de la sesión por su id.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualiza displayName y/o photoURL del usuario. Los
// campos nil quedan como estaban.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if in.DisplayName != nil {
		user.DisplayName = *in.DisplayName
	}
	if in.PhotoURL != nil {
		user.PhotoURL = *in.PhotoURL
	}
	user.UpdatedAt = uc.now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
