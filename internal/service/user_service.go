package service

import (
	"context"
	"errors"

	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"
	"tangle/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 12

var errInvalidCredentials = pkg.Unauthorized("Invalid credentials")

type UserService struct {
	users       *mysql.UserRepository
	communities *mysql.CommunityRepository
	tokens      *redis.TokenRepository
}

func NewUserService(users *mysql.UserRepository, communities *mysql.CommunityRepository, tokens *redis.TokenRepository) *UserService {
	return &UserService{users: users, communities: communities, tokens: tokens}
}

type RegisterParams struct {
	FullName      string
	Email         string
	PhoneNumber   string
	Password      string
	Address       string
	Locality      string
	Pincode       string
	Role          string
	CommunityCode string
}

type UpdateProfileParams struct {
	FullName       string
	Address        string
	Locality       string
	Pincode        string
	ProfilePicture string
}

// Register resolves the community code, rejects duplicate identities and
// creates the user. The unique indexes on email/phone back the existence
// check, so two racing registrations cannot both land.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (*pkg.Pair, *model.UserView, error) {
	exists, err := s.users.ExistsByEmailOrPhone(p.Email, p.PhoneNumber)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, pkg.BadRequest("User with this email or phone number already exists")
	}

	community, err := s.communities.FindActiveByCode(p.CommunityCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, pkg.BadRequest("Community not found with the provided code")
	}
	if err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), passwordCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		FullName:    p.FullName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Password:    string(hash),
		Address:     p.Address,
		Locality:    p.Locality,
		Pincode:     p.Pincode,
		Role:        p.Role,
		CommunityID: community.ID,
		IsActive:    true,
		IsVerified:  true,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, pkg.BadRequest("User with this email or phone number already exists")
		}
		return nil, nil, err
	}

	return s.issueSession(ctx, user)
}

// Login accepts either email or phone as the identifier. A missing user and
// a wrong password produce the same response.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*pkg.Pair, *model.UserView, error) {
	user, err := s.users.FindActiveByEmailOrPhone(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, errInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, errInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

func (s *UserService) issueSession(ctx context.Context, user *model.User) (*pkg.Pair, *model.UserView, error) {
	pair, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}
	if err := s.tokens.Save(ctx, user.ID, pair.AccessToken); err != nil {
		return nil, nil, err
	}
	view, err := s.users.ProfileByID(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return pair, view, nil
}

// Refresh rotates the token pair and re-whitelists the new access token.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	pair, claims, err := pkg.RefreshPair(refreshToken)
	if err != nil {
		return nil, pkg.Unauthorized(err.Error())
	}
	if err := s.tokens.Save(ctx, claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.tokens.Delete(ctx, userID)
}

func (s *UserService) Profile(userID uint64) (*model.UserView, error) {
	view, err := s.users.ProfileByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("User not found")
	}
	return view, err
}

func (s *UserService) UpdateProfile(userID uint64, p UpdateProfileParams) (*model.UserView, error) {
	fields := map[string]any{
		"full_name":       p.FullName,
		"address":         p.Address,
		"locality":        p.Locality,
		"pincode":         p.Pincode,
		"profile_picture": p.ProfilePicture,
	}
	affected, err := s.users.UpdateProfile(userID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, pkg.NotFound("User not found")
	}
	return s.Profile(userID)
}

func (s *UserService) Stats(userID uint64) (*model.UserStats, error) {
	return s.users.Stats(userID)
}
