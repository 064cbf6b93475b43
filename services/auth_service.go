package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"docuvault/models"
	"docuvault/store"
	"docuvault/utils"

	"golang.org/x/crypto/bcrypt"
)

const defaultFolderName = "unknown"

type AuthService struct {
	store         *store.Store
	folderService *FolderService
	jwtSecret     string
	jwtExpiration time.Duration
	storageDir    string
}

func NewAuthService(st *store.Store, folderService *FolderService, jwtSecret string, jwtExpiration time.Duration, storageDir string) *AuthService {
	return &AuthService{
		store:         st,
		folderService: folderService,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		storageDir:    storageDir,
	}
}

type RegisterRequest struct {
	LoginID    string `json:"login_id" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FolderName string `json:"folder_name"`
}

type RegisterResult struct {
	UserID     int64  `json:"user_id"`
	FolderName string `json:"folder_name"`
}

// Register creates the user and their initial folder.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if err := utils.ValidateLoginID(req.LoginID); err != nil {
		return nil, utils.BadRequestError(err.Error())
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, utils.BadRequestError(err.Error())
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, utils.BadRequestError(err.Error())
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.store.Users.NextID(ctx)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           id,
		LoginID:      req.LoginID,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, utils.ConflictError("Login id or email already in use")
		}
		return nil, err
	}

	folderName := strings.TrimSpace(req.FolderName)
	if folderName == "" {
		folderName = defaultFolderName
	}
	folder, err := s.folderService.Create(ctx, user.ID, folderName)
	if err != nil {
		return nil, err
	}

	return &RegisterResult{UserID: user.ID, FolderName: folder.Name}, nil
}

type LoginResult struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// Login verifies credentials, issues a token and persists it as the
// user's current access token.
func (s *AuthService) Login(ctx context.Context, loginID, password string) (*LoginResult, error) {
	user, err := s.store.Users.FindByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.UnauthorizedError("Invalid login id or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), truncateForBcrypt(password)); err != nil {
		return nil, utils.UnauthorizedError("Invalid login id or password")
	}

	token, err := utils.GenerateJWTToken(user.ID, user.LoginID, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		return nil, err
	}
	if err := s.store.Users.UpdateAccessToken(ctx, user.ID, token); err != nil {
		return nil, err
	}
	return &LoginResult{UserID: user.ID, Token: token}, nil
}

// DeleteAccount removes the user, cascading store records, and wipes
// the user's storage tree.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.store.Users.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundError("User not found")
		}
		return err
	}
	dir := filepath.Join(s.storageDir, strconv.FormatInt(userID, 10))
	if err := os.RemoveAll(dir); err != nil {
		utils.LogWarning("failed to remove storage tree for user %d: %v", userID, err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncateForBcrypt(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// bcrypt rejects inputs above 72 bytes, so longer passwords are
// truncated the same way on hash and verify.
func truncateForBcrypt(password string) []byte {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}
