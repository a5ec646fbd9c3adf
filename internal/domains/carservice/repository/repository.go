package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"autocare/infras/otel"
	"autocare/infras/postgres"
	"autocare/internal/domains/carservice/model"
	gDto "autocare/shared/dto"
	gRepo "autocare/shared/repository"
)

type CarService interface {
	Insert(ctx context.Context, model model.CarService) error
	InsertBulk(ctx context.Context, models []model.CarService) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CarService, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CarService, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CarService]
}

func New(db *postgres.Connection, otel otel.Otel) CarService {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CarService](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
