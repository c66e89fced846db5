// Package storage is the in-memory state behind the stub API server: a
// seeded book catalog, registered users and their reservations. It
// stands in for the real service's database during development and in
// tests.
package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookbuddy/library-client/internal/model"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBookUnavailable    = errors.New("book is not available")
)

type userRecord struct {
	model.User
	password string
}

type Storage struct {
	mu           sync.RWMutex
	books        map[string]model.Book
	bookOrder    []string
	users        map[string]userRecord
	usersByEmail map[string]string
	reservations map[string]model.Reservation
}

func New() *Storage {
	s := &Storage{
		books:        make(map[string]model.Book),
		users:        make(map[string]userRecord),
		usersByEmail: make(map[string]string),
		reservations: make(map[string]model.Reservation),
	}
	s.seed()
	return s
}

func (s *Storage) seed() {
	for _, b := range seedBooks {
		s.books[b.ID] = b
		s.bookOrder = append(s.bookOrder, b.ID)
	}
}

func (s *Storage) ListBooks() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Book, 0, len(s.bookOrder))
	for _, id := range s.bookOrder {
		out = append(out, s.books[id])
	}
	return out
}

func (s *Storage) GetBook(id string) (model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[id]
	if !ok {
		return model.Book{}, ErrNotFound
	}
	return book, nil
}

func (s *Storage) CreateUser(firstName, lastName, email, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[email]; ok {
		return model.User{}, ErrDuplicateEmail
	}
	user := model.User{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.users[user.ID] = userRecord{User: user, password: password}
	s.usersByEmail[email] = user.ID
	return user, nil
}

func (s *Storage) Authenticate(email, password string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usersByEmail[email]
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}
	rec := s.users[id]
	if rec.password != password {
		return model.User{}, ErrInvalidCredentials
	}
	return rec.User, nil
}

func (s *Storage) GetUser(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return rec.User, nil
}

func (s *Storage) ListReservations(userID string) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, 0)
	for _, r := range s.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// CreateReservation flips the book to unavailable and embeds its
// snapshot in the new reservation, at-most-one active reservation per
// book.
func (s *Storage) CreateReservation(userID, bookID string) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[bookID]
	if !ok {
		return model.Reservation{}, ErrNotFound
	}
	if !book.Available {
		return model.Reservation{}, ErrBookUnavailable
	}
	book.Available = false
	s.books[bookID] = book

	rsv := model.Reservation{
		ID:        uuid.NewString(),
		BookID:    bookID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Book:      book,
	}
	s.reservations[rsv.ID] = rsv
	return rsv, nil
}

// DeleteReservation returns the book: the reservation is removed and the
// book becomes available again. Only the owner may delete it.
func (s *Storage) DeleteReservation(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rsv, ok := s.reservations[id]
	if !ok || rsv.UserID != userID {
		return ErrNotFound
	}
	delete(s.reservations, id)
	if book, ok := s.books[rsv.BookID]; ok {
		book.Available = true
		s.books[rsv.BookID] = book
	}
	return nil
}
