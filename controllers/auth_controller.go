package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"campusmarket/middleware"
	"campusmarket/models"
	"campusmarket/utils"
)

type AuthController struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthController(db *gorm.DB, jwtSecret []byte) *AuthController {
	return &AuthController{db: db, jwtSecret: jwtSecret}
}

type registerRequest struct {
	Nama      string `json:"nama"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Alamat    string `json:"alamat"`
	NoTelepon string `json:"no_telepon"`
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if req.Nama == "" || req.Email == "" || req.Password == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Please provide all required fields", nil)
	}

	var existing models.User
	if err := ctl.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return utils.Error(c, fiber.StatusConflict, "Email already registered", nil)
	}

	user := models.User{
		Nama:      req.Nama,
		Email:     req.Email,
		Alamat:    req.Alamat,
		NoTelepon: req.NoTelepon,
	}
	if err := user.HashPassword(req.Password); err != nil {
		return utils.HandleError(c, err)
	}
	if err := ctl.db.Create(&user).Error; err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, "User registered successfully", user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	var user models.User
	if err := ctl.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Email atau password salah", nil)
	}
	if !user.CheckPassword(req.Password) {
		return utils.Error(c, fiber.StatusUnauthorized, "Email atau password salah", nil)
	}
	if user.StatusAkun != models.AkunAktif {
		return utils.Error(c, fiber.StatusUnauthorized, "Akun tidak aktif. Hubungi admin", nil)
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"role":    string(user.Role),
		"exp":     expirationTime.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ctl.jwtSecret)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Gagal membuat token login", nil)
	}

	return utils.Success(c, fiber.StatusOK, "Login berhasil", fiber.Map{
		"user":  user,
		"token": tokenString,
	})
}

func (ctl *AuthController) GetProfile(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, "Profile retrieved successfully", middleware.CurrentUser(c))
}

type updateProfileRequest struct {
	Nama      string `json:"nama"`
	Alamat    string `json:"alamat"`
	NoTelepon string `json:"no_telepon"`
	Password  string `json:"password"`
}

func (ctl *AuthController) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	if req.Nama != "" {
		user.Nama = req.Nama
	}
	if req.Alamat != "" {
		user.Alamat = req.Alamat
	}
	if req.NoTelepon != "" {
		user.NoTelepon = req.NoTelepon
	}
	if req.Password != "" {
		if err := user.HashPassword(req.Password); err != nil {
			return utils.HandleError(c, err)
		}
	}

	if err := ctl.db.Save(user).Error; err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Profile updated successfully", user)
}
