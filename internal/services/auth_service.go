package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"appdrop-backend/internal/apperr"
	"appdrop-backend/internal/models"
	"appdrop-backend/internal/session"
)

type AuthService struct {
	store      RecordStore
	sessions   *session.Context
	secret     []byte
	tokenTTL   time.Duration
	adminEmail string
	validate   *validator.Validate
}

func NewAuthService(store RecordStore, sessions *session.Context, secret string, tokenTTL time.Duration, adminEmail string) *AuthService {
	return &AuthService{
		store:      store,
		sessions:   sessions,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		adminEmail: adminEmail,
		validate:   validator.New(),
	}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type signUpInput struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=6"`
	DisplayName string `validate:"required"`
}

// SignUp creates the account and its matching users document under one
// identifier, then signs the new user in. The first sign-up matching the
// configured admin email gets the admin role.
func (s *AuthService) SignUp(ctx context.Context, email, password, displayName string) (models.User, string, error) {
	in := signUpInput{Email: email, Password: password, DisplayName: displayName}
	if err := s.validate.Struct(in); err != nil {
		return models.User{}, "", apperr.Validation("invalid sign-up request: %v", err)
	}

	var existing []models.User
	if err := s.store.QueryByField(ctx, UsersCollection, "email", email, &existing); err != nil {
		return models.User{}, "", err
	}
	if len(existing) > 0 {
		return models.User{}, "", apperr.Auth("email already in use")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	role := models.RoleUser
	if s.adminEmail != "" && email == s.adminEmail {
		role = models.RoleAdmin
	}

	user := models.User{
		ID:          primitive.NewObjectID(),
		Email:       email,
		DisplayName: displayName,
		Password:    hashed,
		Role:        role,
		CreatedAt:   time.Now(),
	}
	if _, err := s.store.CreateDocument(ctx, UsersCollection, user); err != nil {
		return models.User{}, "", err
	}

	token, tokenID, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	s.sessions.SignIn(tokenID, user.ID.Hex())

	user.Password = ""
	return user, token, nil
}

// SignIn authenticates a user and returns a JWT carrying the role.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, string, error) {
	var matches []models.User
	if err := s.store.QueryByField(ctx, UsersCollection, "email", email, &matches); err != nil {
		return "", "", err
	}
	if len(matches) == 0 {
		return "", "", apperr.Auth("invalid credentials")
	}

	user := matches[0]
	if !VerifyPassword(password, user.Password) {
		return "", "", apperr.Auth("invalid credentials")
	}

	token, tokenID, err := s.issueToken(user)
	if err != nil {
		return "", "", err
	}
	s.sessions.SignIn(tokenID, user.ID.Hex())

	return token, user.Role, nil
}

// SignOut revokes the presented token.
func (s *AuthService) SignOut(tokenID string) {
	s.sessions.SignOut(tokenID)
}

// CurrentUser resolves the token subject to its users document.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	if err := s.store.GetDocument(ctx, UsersCollection, userID, &user); err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *AuthService) issueToken(user models.User) (string, string, error) {
	tokenID := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":  user.ID.Hex(),
		"role": user.Role,
		"jti":  tokenID,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return signed, tokenID, nil
}
