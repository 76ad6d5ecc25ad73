package models

// QuizCard is the single pending question of a user.
type QuizCard struct {
	UserID int64
	Prompt string
	Answer string
}

type Question struct {
	Prompt  string
	Answer  string
	Options []string
}

type AnswerResult struct {
	Correct bool
	Prompt  string
	Answer  string
}
