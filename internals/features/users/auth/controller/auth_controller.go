// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/configs"
	"minhaigreja_backend/internals/features/users/auth/model"
	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

/* =========================
   POST /api/auth/login
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var usuario model.UsuarioModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("usuario_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// mesma mensagem para email e senha errados
		return fiber.NewError(fiber.StatusUnauthorized, "credenciais inválidas")
	}
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(usuario.UsuarioSenha), []byte(req.Senha)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "credenciais inválidas")
	}

	claims := jwt.MapClaims{
		"sub":  usuario.UsuarioID.String(),
		"nome": usuario.UsuarioNome,
		"role": usuario.UsuarioRole,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "falha ao emitir token")
	}

	return helper.Success(c, "Login efetuado", fiber.Map{
		"access_token": token,
		"usuario": fiber.Map{
			"usuario_id":   usuario.UsuarioID,
			"usuario_nome": usuario.UsuarioNome,
			"usuario_role": usuario.UsuarioRole,
		},
	})
}
