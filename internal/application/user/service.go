package user

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/domain/ports/input"
	ports "splitwise-platform/internal/domain/ports/output"
	uow "splitwise-platform/internal/domain/ports/output/uow"
	user_port "splitwise-platform/internal/domain/ports/output/user"
	"splitwise-platform/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Service struct {
	uow          uow.UnitOfWork
	log          ports.Logger
	passwordCost int
}

type Option func(*Service)

// WithPasswordCost overrides the bcrypt cost used for new passwords.
func WithPasswordCost(cost int) Option {
	return func(s *Service) { s.passwordCost = cost }
}

func NewService(uow uow.UnitOfWork, log ports.Logger, opts ...Option) input.UserInputPort {
	s := &Service{uow: uow, log: log, passwordCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// read runs fn in a transaction that is always rolled back.
func (s *Service) read(ctx context.Context, fn func(repo user_port.UserRepository) error) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return fn(tx.UserRepository())
}

// write runs fn in a transaction committed on success.
func (s *Service) write(ctx context.Context, fn func(repo user_port.UserRepository) error) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := fn(tx.UserRepository()); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if len(email) > utils.MaxEmailLength {
		return utils.NewBadRequest("email must be at most %d characters", utils.MaxEmailLength)
	}
	if !utils.IsValidEmail(email) {
		return utils.NewBadRequest("invalid email: %q", email)
	}
	return nil
}

func validatePhone(phone string) error {
	if phone != "" && !utils.IsValidPhoneNumber(phone) {
		return utils.NewBadRequest("invalid phone number: %q", phone)
	}
	return nil
}

func validateRole(role string) error {
	if !utils.Role(role).Valid() {
		return utils.NewBadRequest("invalid role: %q", role)
	}
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return utils.NewBadRequest("user id must be positive")
	}
	return nil
}

// normalizePage applies pagination defaults and rejects unknown sort keys.
func normalizePage(p models.PageRequest) (models.PageRequest, error) {
	if p.Page < 0 {
		return p, utils.NewBadRequest("page must not be negative")
	}
	if p.Size <= 0 {
		p.Size = utils.DefaultPageSize
	}
	if p.Size > utils.MaxPageSize {
		p.Size = utils.MaxPageSize
	}
	if p.Page > math.MaxInt/p.Size {
		return p, utils.NewBadRequest("page is out of range")
	}
	if p.SortBy == "" {
		p.SortBy = utils.DefaultSortBy
	}
	if !utils.ContainsString(models.UserSortFields, p.SortBy) {
		return p, utils.NewBadRequest("unsupported sort field: %q", p.SortBy)
	}
	p.Direction = strings.ToLower(p.Direction)
	if p.Direction == "" {
		p.Direction = utils.DefaultSortDirection
	}
	if p.Direction != "asc" && p.Direction != "desc" {
		return p, utils.NewBadRequest("unsupported sort direction: %q", p.Direction)
	}
	return p, nil
}

func (s *Service) CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

	if !utils.IsValidUsername(in.Username) {
		s.log.Warn("CreateUser invalid username", "username", in.Username)
		return nil, utils.NewBadRequest("invalid username: use 3 to 20 letters, digits or underscores")
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validatePhone(in.PhoneNumber); err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, utils.NewBadRequest("password must be at least %d characters", minPasswordLength)
	}
	if len(in.Password) > utils.MaxPasswordBytes {
		return nil, utils.NewBadRequest("password must be at most %d bytes", utils.MaxPasswordBytes)
	}
	if in.Role == "" {
		in.Role = string(utils.RoleMember)
	}
	if err := validateRole(in.Role); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.passwordCost)
	if err != nil {
		s.log.Error("CreateUser hash password failed", "err", err)
		return nil, err
	}

	u := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     active,
	}

	err = s.write(ctx, func(repo user_port.UserRepository) error {
		exists, err := repo.ExistsByUsername(ctx, u.Username)
		if err != nil {
			return err
		}
		if exists {
			return utils.ErrUsernameTaken
		}
		exists, err = repo.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if exists {
			return utils.ErrEmailTaken
		}
		return repo.CreateUser(ctx, u)
	})
	if err != nil {
		s.log.Error("CreateUser failed", "username", u.Username, "err", err)
		return nil, err
	}
	s.log.Info("user created", "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var u *models.User
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		u, err = repo.GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if utils.IsNullOrEmpty(username) {
		return nil, utils.NewBadRequest("username is required")
	}
	var u *models.User
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		u, err = repo.FindByUsername(ctx, strings.TrimSpace(username))
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if utils.IsNullOrEmpty(email) {
		return nil, utils.NewBadRequest("email is required")
	}
	var u *models.User
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		u, err = repo.FindByEmail(ctx, normalizeEmail(email))
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, in models.UserUpdate) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if in.Email != nil {
		e := normalizeEmail(*in.Email)
		if err := validateEmail(e); err != nil {
			return nil, err
		}
		in.Email = &e
	}
	if in.PhoneNumber != nil {
		p := strings.TrimSpace(*in.PhoneNumber)
		if err := validatePhone(p); err != nil {
			return nil, err
		}
		in.PhoneNumber = &p
	}
	if in.Role != nil {
		if err := validateRole(*in.Role); err != nil {
			return nil, err
		}
	}

	var u *models.User
	err := s.write(ctx, func(repo user_port.UserRepository) error {
		var err error
		u, err = repo.GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		if in.Email != nil && *in.Email != u.Email {
			exists, err := repo.ExistsByEmail(ctx, *in.Email)
			if err != nil {
				return err
			}
			if exists {
				return utils.ErrEmailTaken
			}
			u.Email = *in.Email
		}
		if in.FirstName != nil {
			u.FirstName = strings.TrimSpace(*in.FirstName)
		}
		if in.LastName != nil {
			u.LastName = strings.TrimSpace(*in.LastName)
		}
		if in.PhoneNumber != nil {
			u.PhoneNumber = *in.PhoneNumber
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		return repo.UpdateUser(ctx, u)
	})
	if err != nil {
		s.log.Error("UpdateUser failed", "user_id", id, "err", err)
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUserActive(ctx context.Context, id int64, isActive bool) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var u *models.User
	err := s.write(ctx, func(repo user_port.UserRepository) error {
		if err := repo.UpdateUserActive(ctx, id, isActive); err != nil {
			return err
		}
		var err error
		u, err = repo.GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		s.log.Error("UpdateUserActive failed", "user_id", id, "err", err)
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	err := s.write(ctx, func(repo user_port.UserRepository) error {
		return repo.DeleteUser(ctx, id)
	})
	if err != nil {
		s.log.Error("DeleteUser failed", "user_id", id, "err", err)
		return err
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}

func (s *Service) ListUsers(ctx context.Context, page models.PageRequest, active *bool) (*models.Page[*models.User], error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	var res *models.Page[*models.User]
	err = s.read(ctx, func(repo user_port.UserRepository) error {
		switch {
		case active == nil:
			items, err := repo.ListUsers(ctx, page)
			if err != nil {
				return err
			}
			total, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			res = models.NewPage(items, page, total)
		case *active:
			items, err := repo.ListActivePage(ctx, page)
			if err != nil {
				return err
			}
			total, err := repo.CountActive(ctx)
			if err != nil {
				return err
			}
			res = models.NewPage(items, page, total)
		default:
			// no paged query for inactive users
			all, err := repo.ListInactive(ctx)
			if err != nil {
				return err
			}
			sortUsers(all, page)
			res = models.SlicePage(all, page)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func sortUsers(users []*models.User, page models.PageRequest) {
	key := func(u *models.User) string {
		switch page.SortBy {
		case "username":
			return u.Username
		case "email":
			return u.Email
		case "first_name":
			return u.FirstName
		case "last_name":
			return u.LastName
		}
		return ""
	}
	less := func(a, b *models.User) bool {
		switch page.SortBy {
		case "id":
			return a.ID < b.ID
		case "created_at":
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		}
		if ka, kb := key(a), key(b); ka != kb {
			return ka < kb
		}
		return a.ID < b.ID
	}
	sort.SliceStable(users, func(i, j int) bool {
		if page.Direction == "desc" {
			return less(users[j], users[i])
		}
		return less(users[i], users[j])
	})
}

func (s *Service) ListActiveUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		users, err = repo.ListActive(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) ListInactiveUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		users, err = repo.ListInactive(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) SearchUsers(ctx context.Context, term string, page models.PageRequest) (*models.Page[*models.User], error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	term = strings.TrimSpace(term)
	var res *models.Page[*models.User]
	err = s.read(ctx, func(repo user_port.UserRepository) error {
		items, err := repo.SearchUsers(ctx, term, page)
		if err != nil {
			return err
		}
		total, err := repo.CountSearch(ctx, term)
		if err != nil {
			return err
		}
		res = models.NewPage(items, page, total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) FindUsersByName(ctx context.Context, firstName, lastName string, activeOnly bool) ([]*models.User, error) {
	if utils.IsNullOrEmpty(firstName) || utils.IsNullOrEmpty(lastName) {
		return nil, utils.NewBadRequest("first_name and last_name are required")
	}
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	var users []*models.User
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		if activeOnly {
			users, err = repo.FindActiveByFirstNameAndLastName(ctx, firstName, lastName)
		} else {
			users, err = repo.FindByFirstNameAndLastName(ctx, firstName, lastName)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) UserStats(ctx context.Context) (*models.UserStats, error) {
	var st models.UserStats
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		if st.Total, err = repo.Count(ctx); err != nil {
			return err
		}
		if st.Active, err = repo.CountActive(ctx); err != nil {
			return err
		}
		st.Inactive, err = repo.CountInactive(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Service) CheckAvailability(ctx context.Context, username, email string) (*models.Availability, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" && email == "" {
		return nil, utils.NewBadRequest("username or email is required")
	}
	res := &models.Availability{Username: username, Email: email}
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		if username != "" {
			if res.UsernameExists, err = repo.ExistsByUsername(ctx, username); err != nil {
				return err
			}
		}
		if email != "" {
			if res.EmailExists, err = repo.ExistsByEmail(ctx, email); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Authenticate accepts a username or an email as login.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, utils.NewBadRequest("login and password are required")
	}
	var u *models.User
	err := s.read(ctx, func(repo user_port.UserRepository) error {
		var err error
		if strings.Contains(login, "@") {
			u, err = repo.FindByEmail(ctx, normalizeEmail(login))
		} else {
			u, err = repo.FindByUsername(ctx, login)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("Authenticate wrong password", "user_id", u.ID)
		return nil, utils.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, utils.ErrUserInactive
	}
	return u, nil
}
