package models

import (
	"database/sql"
	"time"
)

type Word struct {
	Russian string `db:"russian"`
	English string `db:"english"`
}

type UserWord struct {
	UserID         int64        `db:"user_id"`
	Russian        string       `db:"russian"`
	English        string       `db:"english"`
	CorrectAnswers int          `db:"correct_answers"`
	TotalAttempts  int          `db:"total_attempts"`
	CreatedAt      time.Time    `db:"created_at"`
	LastPracticed  sql.NullTime `db:"last_practiced"`
}

func (w UserWord) Accuracy() float64 {
	return Accuracy(w.CorrectAnswers, w.TotalAttempts)
}
