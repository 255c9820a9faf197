package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
	"github.com/tu-usuario/pos-cloud/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y resolución
// del perfil para el guard de acceso.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario sin tenant: hashea password con bcrypt, persiste
// y devuelve sesión. El guard llevará al usuario a onboarding en su primer
// acceso a una ruta protegida. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.SessionResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.sessionFor(user)
}

// Login verifica email/password, genera el token de sesión y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	return uc.sessionFor(user)
}

// CurrentUser resuelve el perfil para el guard de acceso. Un usuario sin
// fila de perfil no es un error: devuelve (nil, nil) y el guard lo trata
// como "sin tenant" (debe llegar a onboarding, no a una página de error).
func (uc *AuthUseCase) CurrentUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil
	}
	return user, nil
}

// RefreshSession re-emite el token con los claims actuales del usuario.
// Se usa tras el onboarding: el token anterior no trae tenant ni rol.
func (uc *AuthUseCase) RefreshSession(userID string) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.sessionFor(user)
}

func (uc *AuthUseCase) sessionFor(user *entity.User) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.RoleID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea la entidad al DTO de salida.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		RoleID:    u.RoleID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
