package services

import "splitwise-platform/internal/domain/models"

//go:generate mockery --name InstanceSelector --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename InstanceSelector.go

type InstanceSelector interface {
	Select(candidates []*models.Instance, count int) []*models.Instance
}
