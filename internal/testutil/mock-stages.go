package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ml-training-pipeline/internal/core/domain"
)

// MockDataIngestion is a mock of DataIngestion.
type MockDataIngestion struct {
	mock.Mock
}

func (m *MockDataIngestion) InitiateDataIngestion(ctx context.Context, run domain.PipelineRun) (domain.DataIngestionArtifact, error) {
	args := m.Called(ctx, run)
	return args.Get(0).(domain.DataIngestionArtifact), args.Error(1)
}

// MockDataValidation is a mock of DataValidation.
type MockDataValidation struct {
	mock.Mock
}

func (m *MockDataValidation) InitiateDataValidation(ctx context.Context, run domain.PipelineRun, ingestion domain.DataIngestionArtifact) (domain.DataValidationArtifact, error) {
	args := m.Called(ctx, run, ingestion)
	return args.Get(0).(domain.DataValidationArtifact), args.Error(1)
}

// MockDataTransformation is a mock of DataTransformation.
type MockDataTransformation struct {
	mock.Mock
}

func (m *MockDataTransformation) InitiateDataTransformation(ctx context.Context, run domain.PipelineRun, ingestion domain.DataIngestionArtifact, validation domain.DataValidationArtifact) (domain.DataTransformationArtifact, error) {
	args := m.Called(ctx, run, ingestion, validation)
	return args.Get(0).(domain.DataTransformationArtifact), args.Error(1)
}

// MockModelTrainer is a mock of ModelTrainer.
type MockModelTrainer struct {
	mock.Mock
}

func (m *MockModelTrainer) InitiateModelTrainer(ctx context.Context, run domain.PipelineRun, transformation domain.DataTransformationArtifact) (domain.ModelTrainerArtifact, error) {
	args := m.Called(ctx, run, transformation)
	return args.Get(0).(domain.ModelTrainerArtifact), args.Error(1)
}

// MockModelEvaluation is a mock of ModelEvaluation.
type MockModelEvaluation struct {
	mock.Mock
}

func (m *MockModelEvaluation) InitiateModelEvaluation(ctx context.Context, run domain.PipelineRun, ingestion domain.DataIngestionArtifact, trainer domain.ModelTrainerArtifact) (domain.ModelEvaluationArtifact, error) {
	args := m.Called(ctx, run, ingestion, trainer)
	return args.Get(0).(domain.ModelEvaluationArtifact), args.Error(1)
}

// MockModelPusher is a mock of ModelPusher.
type MockModelPusher struct {
	mock.Mock
}

func (m *MockModelPusher) InitiateModelPusher(ctx context.Context, run domain.PipelineRun, evaluation domain.ModelEvaluationArtifact) (domain.ModelPusherArtifact, error) {
	args := m.Called(ctx, run, evaluation)
	return args.Get(0).(domain.ModelPusherArtifact), args.Error(1)
}
