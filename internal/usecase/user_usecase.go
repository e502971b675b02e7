package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type UserUsecase struct {
	userRepo  repo.UserRepository
	hasher    PasswordHasher
	validator Validator
}

// DI
func NewUserUsecase(userRepo repo.UserRepository, hasher PasswordHasher, validator Validator) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		validator: validator,
	}
}

type ListUsersInput struct {
	PageInput
	Q          string
	Role       string
	Newsletter *bool
}

type UserListOutput struct {
	Users      []model.User `json:"users"`
	Pagination Pagination   `json:"pagination"`
}

type CreateUserInput struct {
	Email      string  `json:"email" validate:"required,email,max=255"`
	Password   string  `json:"password" validate:"required,min=8,max=72"`
	LastName   *string `json:"nom" validate:"omitempty,max=50"`
	FirstName  *string `json:"prenom" validate:"omitempty,max=50"`
	Address    *string `json:"adresse" validate:"omitempty,max=255"`
	Phone      *string `json:"telephone" validate:"omitempty,max=20"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin standard"`
	Newsletter *bool   `json:"newsletter"`
}

type UpdateUserInput struct {
	Email      *string `json:"email" validate:"omitempty,email,max=255"`
	Password   *string `json:"password" validate:"omitempty,min=8,max=72"`
	LastName   *string `json:"nom" validate:"omitempty,max=50"`
	FirstName  *string `json:"prenom" validate:"omitempty,max=50"`
	Address    *string `json:"adresse" validate:"omitempty,max=255"`
	Phone      *string `json:"telephone" validate:"omitempty,max=20"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin standard"`
	Newsletter *bool   `json:"newsletter"`
}

// emailは小文字・前後空白なしで保存する
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *UserUsecase) List(ctx context.Context, in ListUsersInput) (UserListOutput, error) {
	if err := in.PageInput.validate(); err != nil {
		return UserListOutput{}, err
	}
	q, err := normalizeListQuery(in.Q)
	if err != nil {
		return UserListOutput{}, err
	}

	query := repo.UserListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          q,
		Newsletter: in.Newsletter,
	}
	if in.Role != "" {
		r := model.Role(in.Role)
		if !r.Valid() {
			return UserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid role")
		}
		query.Role = &r
	}

	items, total, err := u.userRepo.List(ctx, query)
	if err != nil {
		return UserListOutput{}, FromStoreError(err)
	}

	return UserListOutput{
		Users:      items,
		Pagination: NewPagination(in.Page, in.Limit, total),
	}, nil
}

func (u *UserUsecase) Get(ctx context.Context, id string) (model.User, error) {
	if err := checkID(id, "user"); err != nil {
		return model.User{}, err
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return model.User{}, FromStoreError(err)
	}
	return user, nil
}

// トークンのsubから本人を返す。消えていれば401
func (u *UserUsecase) Me(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return model.User{}, FromStoreError(err)
	}
	return user, nil
}

// ユーザー作成（パスワードはハッシュ化して保存）
func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (model.User, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := u.validator.Validate(in); err != nil {
		return model.User{}, err
	}

	hashed, err := u.hashPassword(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Email:        in.Email,
		PasswordHash: hashed,
		LastName:     in.LastName,
		FirstName:    in.FirstName,
		Address:      in.Address,
		Phone:        in.Phone,
		Role:         model.RoleStandard,
	}
	if in.Role != nil {
		user.Role = model.Role(*in.Role)
	}
	if in.Newsletter != nil {
		user.Newsletter = *in.Newsletter
	}

	if err := u.userRepo.Create(ctx, &user); err != nil {
		return model.User{}, FromStoreError(err)
	}
	return user, nil
}

// ユーザー更新。passwordが来たら再ハッシュ
func (u *UserUsecase) Update(ctx context.Context, id string, in UpdateUserInput) (model.User, error) {
	if err := checkID(id, "user"); err != nil {
		return model.User{}, err
	}
	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		in.Email = &email
	}
	if err := u.validator.Validate(in); err != nil {
		return model.User{}, err
	}

	fields := map[string]any{}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Password != nil {
		hashed, err := u.hashPassword(*in.Password)
		if err != nil {
			return model.User{}, err
		}
		fields["password_hash"] = hashed
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Role != nil {
		fields["role"] = model.Role(*in.Role)
	}
	if in.Newsletter != nil {
		fields["newsletter"] = *in.Newsletter
	}

	if err := u.userRepo.Update(ctx, id, fields); err != nil {
		return model.User{}, FromStoreError(err)
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return model.User{}, FromStoreError(err)
	}
	return user, nil
}

// bcryptは72バイトまで（マルチバイト文字だと72文字未満でも超える）
func (u *UserUsecase) hashPassword(plain string) (string, error) {
	hashed, err := u.hasher.Hash(plain)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", NewValidationError([]string{"password must not exceed 72 bytes"})
	}
	return hashed, err
}

func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "user"); err != nil {
		return err
	}
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return FromStoreError(err)
	}
	return nil
}
