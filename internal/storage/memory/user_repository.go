package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

type userRepository struct {
	store *Store
}

// Create сохраняет пользователя, присваивая следующий свободный ID.
func (r *userRepository) Create(user domain.User) (domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.ID] = user
	return user, nil
}

// Get возвращает пользователя или *NotFoundError, если его нет.
func (r *userRepository) Get(id int64) (domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.NewUserNotFound(id)
	}
	return user, nil
}

// List возвращает всех пользователей в порядке возрастания ID.
func (r *userRepository) List() ([]domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

var _ domain.UserRepository = (*userRepository)(nil)
