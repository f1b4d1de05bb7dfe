package controllers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"rating-platform-api/config"
	"rating-platform-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const passwordResetTTL = 30 * time.Minute

// passwordResetRepository isolates the data access so the token flow can be
// tested without a database.
type passwordResetRepository interface {
	FindUserByEmail(email string) (*models.User, error)
	RevokeUserTokens(userID int, now time.Time) error
	CreateUserToken(token *models.UserToken) error
	FindActiveTokenByHash(hash string, now time.Time) (*models.UserToken, error)
	UpdateUserPassword(userID int, hashedPassword string) error
	RevokeToken(tokenID int, now time.Time) error
}

type gormPasswordResetRepository struct {
	db *gorm.DB
}

func (r *gormPasswordResetRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormPasswordResetRepository) RevokeUserTokens(userID int, now time.Time) error {
	return r.db.Model(&models.UserToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

func (r *gormPasswordResetRepository) CreateUserToken(token *models.UserToken) error {
	return r.db.Create(token).Error
}

func (r *gormPasswordResetRepository) FindActiveTokenByHash(hash string, now time.Time) (*models.UserToken, error) {
	var token models.UserToken
	err := r.db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, now).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *gormPasswordResetRepository) UpdateUserPassword(userID int, hashedPassword string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", hashedPassword).Error
}

func (r *gormPasswordResetRepository) RevokeToken(tokenID int, now time.Time) error {
	return r.db.Model(&models.UserToken{}).
		Where("id = ?", tokenID).
		Update("revoked_at", now).Error
}

type PasswordResetController struct {
	repo passwordResetRepository
}

func NewPasswordResetController(db *gorm.DB) *PasswordResetController {
	return &PasswordResetController{repo: &gormPasswordResetRepository{db: db}}
}

// ForgotPassword issues a reset token and mails it. The response is the same
// whether or not the address has an account.
func (ctl *PasswordResetController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	neutral := gin.H{"message": "If the account exists, a reset link has been sent"}

	user, err := ctl.repo.FindUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, neutral)
		return
	}

	now := time.Now()
	if err := ctl.repo.RevokeUserTokens(user.ID, now); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	rawToken, err := generateResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	token := models.UserToken{
		UserID:    user.ID,
		TokenHash: hashResetToken(rawToken),
		ExpiresAt: now.Add(passwordResetTTL),
	}
	if err := ctl.repo.CreateUserToken(&token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	if err := sendPasswordResetEmail(*user, rawToken); err != nil {
		// The token is already stored; log and keep the neutral answer.
		log.Printf("Warning: failed to send reset email to user %d: %v", user.ID, err)
	}

	c.JSON(http.StatusOK, neutral)
}

// ResetPassword consumes a mailed token and sets the new password.
func (ctl *PasswordResetController) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	token, err := ctl.repo.FindActiveTokenByHash(hashResetToken(req.Token), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}
	if token == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	if err := ctl.repo.UpdateUserPassword(token.UserID, hashed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}
	if err := ctl.repo.RevokeToken(token.ID, now); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func sendPasswordResetEmail(user models.User, rawToken string) error {
	resetURL, err := buildResetURL(os.Getenv("PUBLIC_BASE_URL"), rawToken)
	if err != nil {
		return err
	}

	html := fmt.Sprintf(
		`<p>Hello %s,</p>
<p>A password reset was requested for your account. The link below is valid for 30 minutes:</p>
<p><a href="%s">%s</a></p>
<p>If you did not request this, you can ignore this message.</p>`,
		user.Name, resetURL, resetURL,
	)

	return config.SendMail([]string{user.Email}, "Password reset", html)
}

func buildResetURL(baseURL, token string) (string, error) {
	if baseURL == "" {
		return "", fmt.Errorf("PUBLIC_BASE_URL not configured")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	u.Path = "/reset-password"
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
