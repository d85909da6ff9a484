package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
	"github.com/tu-usuario/oroplan-admin/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación del panel: solo login de administradores. El alta
// de cuentas y la gestión de la lista blanca viven en el write-path externo.
type AuthUseCase struct {
	whitelistRepo repository.WhitelistRepository
	jwtCfg        JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(whitelistRepo repository.WhitelistRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{whitelistRepo: whitelistRepo, jwtCfg: jwtCfg}
}

// Login verifica teléfono/password de un admin, genera JWT y retorna token +
// perfil. Credenciales inválidas y admin inexistente devuelven el mismo
// ErrUnauthorized para no revelar qué teléfonos tienen cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.whitelistRepo.GetAdminByPhone(ctx, in.Phone)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.AdminProfileDTO{
			ID:    admin.ID,
			Name:  admin.Name,
			Phone: admin.Phone,
			Role:  admin.Role,
		},
	}, nil
}
