package controller

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/221FA04614/AuraShop-main/mailer"
	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/store"
)

const (
	tokenTTL = time.Hour
	otpTTL   = 10 * time.Minute
)

type AuthController struct {
	Users     store.UserStore
	Mailer    mailer.Mailer
	JWTSecret string
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email and password are required"})
	}

	if _, err := ac.Users.GetByEmail(c.Context(), req.Email); err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "user already exists"})
	} else if !errors.Is(err, store.ErrNotFound) {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}
	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     "customer",
	}
	if err := ac.Users.Create(c.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.Status(400).JSON(fiber.Map{"error": "user already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}

	token, err := ac.issueToken(&user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}
	return c.Status(201).JSON(fiber.Map{"token": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	user, err := ac.Users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := ac.issueToken(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}
	return c.JSON(fiber.Map{"token": token})
}

const resetSentMessage = "If a user with that email exists, a password reset OTP has been sent."

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	// Respond identically whether or not the account exists.
	user, err := ac.Users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return c.JSON(fiber.Map{"message": resetSentMessage})
	}

	otp, err := generateOTP()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}
	expires := time.Now().Add(otpTTL)
	user.ResetPasswordOTP = &otp
	user.ResetPasswordExpires = &expires
	if err := ac.Users.Update(c.Context(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}

	body := fmt.Sprintf("Your OTP is: %s\n\nThis OTP is valid for 10 minutes.", otp)
	if err := ac.Mailer.Send(user.Email, "Your Password Reset OTP", body); err != nil {
		log.Printf("send reset mail to %s: %v", user.Email, err)
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}
	return c.JSON(fiber.Map{"message": resetSentMessage})
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	user, err := ac.Users.GetByEmail(c.Context(), req.Email)
	if err != nil || user.ResetPasswordOTP == nil || user.ResetPasswordExpires == nil ||
		*user.ResetPasswordOTP != req.OTP || time.Now().After(*user.ResetPasswordExpires) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid or expired OTP. Please try again."})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}
	user.Password = string(hashed)
	user.ResetPasswordOTP = nil
	user.ResetPasswordExpires = nil
	if err := ac.Users.Update(c.Context(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "server error"})
	}
	return c.JSON(fiber.Map{"message": "Password has been successfully reset."})
}

func (ac *AuthController) issueToken(u *model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.JWTSecret))
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
