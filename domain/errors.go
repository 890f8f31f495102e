package domain

import "errors"

// 呼び出し側が指定した ID が存在しない場合のエラー
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrIssueNotFound       = errors.New("issue not found")
	ErrMediaSourceNotFound = errors.New("media source not found")
	ErrTopicNotFound       = errors.New("topic not found")
)

// RepositoryError represents an error from the repository layer.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
