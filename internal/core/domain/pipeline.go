package domain

import (
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageIngestion      Stage = "ingestion"
	StageValidation     Stage = "validation"
	StageTransformation Stage = "transformation"
	StageTraining       Stage = "training"
	StageEvaluation     Stage = "evaluation"
	StagePusher         Stage = "pusher"
)

type RunStatus string

const (
	RunStatusPushed           RunStatus = "PUSHED"
	RunStatusValidationFailed RunStatus = "VALIDATION_FAILED"
	RunStatusModelRejected    RunStatus = "MODEL_REJECTED"
)

// PipelineRun identifies one execution of the training pipeline.
// ArtifactDir is where stages should place their outputs; it is not created here.
type PipelineRun struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ArtifactDir string    `json:"artifact_dir"`
	StartedAt   time.Time `json:"started_at"`
}

// PipelineResult collects the artifacts a run produced.
// A nil artifact means its stage was not reached.
type PipelineResult struct {
	Run    PipelineRun `json:"run"`
	Status RunStatus   `json:"status"`

	DataIngestion      *DataIngestionArtifact      `json:"data_ingestion,omitempty"`
	DataValidation     *DataValidationArtifact     `json:"data_validation,omitempty"`
	DataTransformation *DataTransformationArtifact `json:"data_transformation,omitempty"`
	ModelTrainer       *ModelTrainerArtifact       `json:"model_trainer,omitempty"`
	ModelEvaluation    *ModelEvaluationArtifact    `json:"model_evaluation,omitempty"`
	ModelPusher        *ModelPusherArtifact        `json:"model_pusher,omitempty"`
}
