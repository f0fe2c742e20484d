package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/pkg/jwt"
)

// AdminSubject subject de los tokens emitidos: hay un único administrador.
const AdminSubject = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del panel de administración con contraseña compartida.
type AuthUseCase struct {
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso. La contraseña configurada se
// guarda solo como hash bcrypt; Login compara contra ese hash.
func NewAuthUseCase(password string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	if password == "" {
		return nil, fmt.Errorf("auth: contraseña de administrador vacía")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash de contraseña: %w", err)
	}
	return &AuthUseCase{passwordHash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica la contraseña y emite un token con rol admin.
// Devuelve domain.ErrUnauthorized si no coincide.
func (uc *AuthUseCase) Login(in dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, AdminSubject, jwt.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}
