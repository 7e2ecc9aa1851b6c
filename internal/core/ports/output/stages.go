package ports

import (
	"context"

	"ml-training-pipeline/internal/core/domain"
)

// Stage collaborators. Each produces exactly one artifact from the artifacts
// of earlier stages. Returned errors are infrastructure failures only; a
// failed validation or a rejected model is reported through the artifact.

type DataIngestion interface {
	InitiateDataIngestion(ctx context.Context, run domain.PipelineRun) (domain.DataIngestionArtifact, error)
}

type DataValidation interface {
	InitiateDataValidation(ctx context.Context, run domain.PipelineRun, ingestion domain.DataIngestionArtifact) (domain.DataValidationArtifact, error)
}

type DataTransformation interface {
	InitiateDataTransformation(ctx context.Context, run domain.PipelineRun, ingestion domain.DataIngestionArtifact, validation domain.DataValidationArtifact) (domain.DataTransformationArtifact, error)
}

type ModelTrainer interface {
	InitiateModelTrainer(ctx context.Context, run domain.PipelineRun, transformation domain.DataTransformationArtifact) (domain.ModelTrainerArtifact, error)
}

type ModelEvaluation interface {
	InitiateModelEvaluation(ctx context.Context, run domain.PipelineRun, ingestion domain.DataIngestionArtifact, trainer domain.ModelTrainerArtifact) (domain.ModelEvaluationArtifact, error)
}

type ModelPusher interface {
	InitiateModelPusher(ctx context.Context, run domain.PipelineRun, evaluation domain.ModelEvaluationArtifact) (domain.ModelPusherArtifact, error)
}

// Stages bundles the collaborators a TrainingPipeline runs.
type Stages struct {
	DataIngestion      DataIngestion
	DataValidation     DataValidation
	DataTransformation DataTransformation
	ModelTrainer       ModelTrainer
	ModelEvaluation    ModelEvaluation
	ModelPusher        ModelPusher
}
