package entity

import (
	"talentsched/core/entity"
)

// Candidate is the read model the scheduler needs for validation and
// interview titles. Candidate CRUD lives in the recruiting pipeline, not
// here.
type Candidate struct {
	Name     string  `db:"name" json:"name"`
	Email    string  `db:"email" json:"email"`
	Phone    *string `db:"phone" json:"phone,omitempty"`
	Timezone string  `db:"timezone" json:"timezone"`
	Status   string  `db:"status" json:"status"`
	entity.BaseEntity
}
