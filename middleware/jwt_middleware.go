package middleware

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"campusmarket/models"
	"campusmarket/services"
)

const localUserKey = "current_user"

// Authenticate memverifikasi bearer token dan memuat user-nya. Akun yang
// tidak aktif ditolak di sini, sebelum menyentuh handler mana pun.
func Authenticate(db *gorm.DB, jwtSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Token diperlukan dalam format Bearer",
			})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("metode signing tidak valid: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			log.Printf("❌ Token tidak valid: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Token tidak valid",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["user_id"] == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Token tidak memiliki user_id",
			})
		}

		userID := uint(claims["user_id"].(float64))

		var user models.User
		if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "User tidak ditemukan",
			})
		}
		if user.StatusAkun != models.AkunAktif {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Akun tidak aktif. Hubungi admin",
			})
		}

		c.Locals(localUserKey, &user)
		return c.Next()
	}
}

// CurrentUser mengembalikan user yang dimuat oleh Authenticate
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUserKey).(*models.User)
	return user
}

// ActorFromCtx membangun identitas actor untuk service inti
func ActorFromCtx(c *fiber.Ctx) services.Actor {
	user := CurrentUser(c)
	return services.Actor{ID: user.UserID, Role: user.Role}
}
