package v1

import (
	nc_uuid "github.com/neuralcash/backend/internal/uuid"
)

type URIID struct {
	ID nc_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
