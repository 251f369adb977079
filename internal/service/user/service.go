package user

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

// Service инкапсулирует бизнес-операции над пользователями.
type Service interface {
	CreateUser(user domain.User) (domain.User, error)
	GetUserByID(id int64) (domain.User, error)
	GetAllUsers() ([]domain.User, error)
}

type service struct {
	users  domain.UserRepository
	logger *log.Entry
}

// NewService создаёт сервис пользователей поверх репозитория.
func NewService(users domain.UserRepository, logger *log.Entry) Service {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &service{users: users, logger: logger}
}

// CreateUser валидирует и сохраняет нового пользователя.
func (s *service) CreateUser(user domain.User) (domain.User, error) {
	if err := user.Validate(); err != nil {
		return domain.User{}, err
	}

	created, err := s.users.Create(user)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.WithFields(log.Fields{
		"user_id":  created.ID,
		"username": created.Username,
	}).Info("user created")
	return created, nil
}

func (s *service) GetUserByID(id int64) (domain.User, error) {
	return s.users.Get(id)
}

func (s *service) GetAllUsers() ([]domain.User, error) {
	return s.users.List()
}
