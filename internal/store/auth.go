package store

import (
	"errors"
	"time"

	"autoluxe/internal/models"
	"autoluxe/internal/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAdminExists        = errors.New("admin account already exists")
)

// --- admin credential and session ---

func (s *Store) HasAdminAccount() bool {
	_, exists, err := s.backend.Get(adminCredsKey)
	if err != nil {
		s.logger.WithError(err).Warn("failed to read admin credential")
		return false
	}
	return exists
}

// CreateAdminAccount stores the encoded credential and activates the admin
// session. First-run setup only; there is no change-password path.
func (s *Store) CreateAdminAccount(password string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists, _ := s.backend.Get(adminCredsKey); exists {
		return ErrAdminExists
	}
	if err := s.backend.Set(adminCredsKey, encodeAdminPassword(password)); err != nil {
		return err
	}
	return s.backend.Set(adminSessionKey, "true")
}

func (s *Store) LoginAdmin(password string) error {
	stored, exists, err := s.backend.Get(adminCredsKey)
	if err != nil || !exists || stored != encodeAdminPassword(password) {
		return ErrInvalidCredentials
	}
	return s.backend.Set(adminSessionKey, "true")
}

func (s *Store) LogoutAdmin() error {
	return s.backend.Delete(adminSessionKey)
}

func (s *Store) IsAdminAuthenticated() bool {
	flag, exists, err := s.backend.Get(adminSessionKey)
	if err != nil {
		s.logger.WithError(err).Warn("failed to read admin session")
		return false
	}
	return exists && flag == "true"
}

// --- client accounts ---

func (s *Store) loadUsers() []models.User {
	var users []models.User
	s.readJSON(usersKey, &users)
	return users
}

func (s *Store) Users() []models.User {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.loadUsers()
}

func (s *Store) EmailExists(email string) bool {
	for _, u := range s.Users() {
		if u.Email == email {
			return true
		}
	}
	return false
}

// RegisterUser creates the account and signs it in. The duplicate-email check
// and the insert happen under the same lock, so two concurrent registrations
// cannot both pass the check.
func (s *Store) RegisterUser(name, email, password string) (*models.User, error) {
	s.mutex.Lock()
	users := s.loadUsers()
	for _, u := range users {
		if u.Email == email {
			s.mutex.Unlock()
			return nil, ErrEmailTaken
		}
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: EncodePassword(password),
		CreatedAt:    time.Now(),
	}
	users = append(users, user)

	if err := s.writeJSON(usersKey, users); err != nil {
		s.mutex.Unlock()
		return nil, err
	}
	err := s.writeJSON(currentUserKey, user)
	s.mutex.Unlock()
	if err != nil {
		return nil, err
	}

	s.events.Publish(Event{Channel: ChannelAuth})
	return &user, nil
}

func (s *Store) LoginUser(email, password string) (*models.User, error) {
	s.mutex.Lock()
	encoded := EncodePassword(password)
	var match *models.User
	for _, u := range s.loadUsers() {
		if u.Email == email && u.PasswordHash == encoded {
			match = &u
			break
		}
	}
	if match == nil {
		s.mutex.Unlock()
		return nil, ErrInvalidCredentials
	}

	err := s.writeJSON(currentUserKey, match)
	s.mutex.Unlock()
	if err != nil {
		return nil, err
	}

	s.events.Publish(Event{Channel: ChannelAuth})
	return match, nil
}

func (s *Store) LogoutUser() error {
	if err := s.backend.Delete(currentUserKey); err != nil {
		return err
	}
	s.events.Publish(Event{Channel: ChannelAuth})
	return nil
}

// CurrentUser returns the session pointer, or nil for anonymous.
func (s *Store) CurrentUser() *models.User {
	var user models.User
	if !s.readJSON(currentUserKey, &user) {
		return nil
	}
	return &user
}
