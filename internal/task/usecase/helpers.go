package usecase

import (
	"crm-task-bridge/internal/model"
	"crm-task-bridge/internal/task"
)

// validateEnums checks optional status/priority values against Zoho's fixed
// sets. Empty means "not supplied" and is always valid.
func (uc *implUseCase) validateEnums(status, priority string) error {
	if status != "" && !model.ValidStatus(status) {
		return task.ErrInvalidStatus
	}
	if priority != "" && !model.ValidPriority(priority) {
		return task.ErrInvalidPriority
	}
	return nil
}
