package store

import "github.com/amishk599/applykit/internal/model"

// NopStore is a no-op store used in dry-run mode. Nothing is recorded and the
// log always reads back empty.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Record(model.Application) error      { return nil }
func (s *NopStore) List() ([]model.Application, error) { return nil, nil }
