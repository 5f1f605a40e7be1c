package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found in scheduler task set")
	ErrNoTasks          = errors.New("task set is empty")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)
