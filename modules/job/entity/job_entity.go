package entity

import (
	"talentsched/core/entity"
)

// JobPosition is the read model the scheduler needs for validation and
// interview descriptions.
type JobPosition struct {
	Title      string  `db:"title" json:"title"`
	Department *string `db:"department" json:"department,omitempty"`
	Location   *string `db:"location" json:"location,omitempty"`
	Status     string  `db:"status" json:"status"`
	entity.BaseEntity
}
