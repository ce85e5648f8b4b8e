package models

import (
	"database/sql"
	"time"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/types"
)

type Member struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	UID       string         `json:"uid" gorm:"uniqueIndex"`
	Email     string         `json:"email"`
	Role      string         `json:"role" gorm:"default:field"`
	State     string         `json:"state"`
	StoreID   sql.NullInt64  `json:"store_id"`
	Username  sql.NullString `json:"username"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// FindOrCreateMemberByUID resolves the member row for a verified token,
// creating it on first login and keeping the identity fields in sync. The
// lookup condition must stay a struct: FirstOrCreate only carries struct and
// map conditions into the row it creates, so a raw `uid = ?` string would
// leave the new member with an empty uid.
func FindOrCreateMemberByUID(uid, email, role, state string) *Member {
	member := &Member{}

	config.DataBase.Where(&Member{UID: uid}).Assign(&Member{
		Email: email,
		Role:  role,
		State: state,
	}).FirstOrCreate(member)

	return member
}

func (m *Member) IsAdmin() bool {
	return m.Role == types.RoleAdmin
}

// Field workers are pinned to one store; admins see every store.
func (m *Member) CanAccessStore(store_id int64) bool {
	if m.IsAdmin() {
		return true
	}

	return m.StoreID.Valid && m.StoreID.Int64 == store_id
}

func (m *Member) Store() *Store {
	if !m.StoreID.Valid {
		return nil
	}

	var store *Store

	config.DataBase.First(&store, m.StoreID.Int64)

	return store
}
