package models

type BoardEventType string

const (
	EventQuestionCreated  BoardEventType = "question.created"
	EventQuestionAnswered BoardEventType = "question.answered"
	EventQuestionDeleted  BoardEventType = "question.deleted"
)

// BoardEvent is pushed to live board clients after every write.
type BoardEvent struct {
	Type     BoardEventType `json:"type"`
	ID       string         `json:"id"`
	Question *Question      `json:"question,omitempty"`
}
