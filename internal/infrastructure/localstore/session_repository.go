package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// SessionRepository implementa repository.SessionRepository sobre el Store.
// La bandera vive bajo la clave auth_user; ausencia de clave = sin sesión.
type SessionRepository struct {
	store *Store
	log   *logger.Logger
}

// NewSessionRepository construye el repositorio.
func NewSessionRepository(store *Store, log *logger.Logger) *SessionRepository {
	return &SessionRepository{store: store, log: log}
}

// Get devuelve la bandera de sesión o nil si no existe. Un payload corrupto
// equivale a "sin sesión".
func (r *SessionRepository) Get() (*entity.SessionUser, error) {
	raw, ok, err := r.store.Get(KeyAuthUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user entity.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		r.log.Warn().Err(err).Str("key", KeyAuthUser).Msg("payload corrupto, se trata como sin sesión")
		return nil, nil
	}
	return &user, nil
}

// Set persiste la bandera de sesión (a lo sumo una entrada).
func (r *SessionRepository) Set(user entity.SessionUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("localstore: serializar sesión: %w", err)
	}
	return r.store.Set(KeyAuthUser, raw)
}

// Clear elimina la bandera; idempotente.
func (r *SessionRepository) Clear() error {
	return r.store.Delete(KeyAuthUser)
}
