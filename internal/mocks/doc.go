// Package mocks holds gomock doubles for the logging and metrics interfaces
// consumed by arithmetic contexts.
package mocks

//go:generate mockgen -destination mock_logger.go -package mocks github.com/agbru/wideint/internal/logging Logger
//go:generate mockgen -destination mock_recorder.go -package mocks github.com/agbru/wideint/internal/metrics Recorder
