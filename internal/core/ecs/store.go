package ecs

import "github.com/kamstrup/intmap"

// Store is a typed lookup table keyed by EntityID.
type Store[T any] struct {
	data *intmap.Map[EntityID, T]
}

func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{data: intmap.New[EntityID, T](capacity)}
}

func (s *Store[T]) Set(id EntityID, v T) {
	s.data.Put(id, v)
}

func (s *Store[T]) Get(id EntityID) (T, bool) {
	return s.data.Get(id)
}

func (s *Store[T]) Remove(id EntityID) {
	s.data.Del(id)
}
