package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-training-pipeline/internal/config"
	"ml-training-pipeline/internal/core/domain"
	"ml-training-pipeline/internal/core/ports/output"
	"ml-training-pipeline/internal/testutil"
)

type stageMocks struct {
	ingestion      *testutil.MockDataIngestion
	validation     *testutil.MockDataValidation
	transformation *testutil.MockDataTransformation
	trainer        *testutil.MockModelTrainer
	evaluation     *testutil.MockModelEvaluation
	pusher         *testutil.MockModelPusher
}

func newStageMocks() *stageMocks {
	return &stageMocks{
		ingestion:      new(testutil.MockDataIngestion),
		validation:     new(testutil.MockDataValidation),
		transformation: new(testutil.MockDataTransformation),
		trainer:        new(testutil.MockModelTrainer),
		evaluation:     new(testutil.MockModelEvaluation),
		pusher:         new(testutil.MockModelPusher),
	}
}

func (m *stageMocks) stages() ports.Stages {
	return ports.Stages{
		DataIngestion:      m.ingestion,
		DataValidation:     m.validation,
		DataTransformation: m.transformation,
		ModelTrainer:       m.trainer,
		ModelEvaluation:    m.evaluation,
		ModelPusher:        m.pusher,
	}
}

func newTestPipeline(t *testing.T, m *stageMocks) *TrainingPipeline {
	t.Helper()
	p, err := NewTrainingPipeline(config.PipelineConfig{
		Name:        "churn",
		ArtifactDir: "artifact",
	}, m.stages())
	require.NoError(t, err)
	p.now = func() time.Time { return time.Date(2026, 10, 16, 14, 5, 9, 0, time.UTC) }
	return p
}

var (
	ingestionArtifact      = domain.NewDataIngestionArtifact("/data/train.csv", "/data/test.csv")
	validationOK           = domain.NewDataValidationArtifact(true, "", "/reports/validation.yaml")
	transformationArtifact = domain.NewDataTransformationArtifact("/tf/preprocessing.pkl", "/tf/train.npy", "/tf/test.npy")
	trainerArtifact        = domain.NewModelTrainerArtifact("/models/m1.pkl", domain.NewClassificationMetricArtifact(0.91, 0.89, 0.93))
	evaluationAccepted     = domain.NewModelEvaluationArtifact(true, 0.04, "s3://models/model.pkl", "/models/m1.pkl")
	pusherArtifact         = domain.NewModelPusherArtifact("models", "s3://models/model.pkl")
)

func TestTrainingPipeline_Run_Pushed(t *testing.T) {
	m := newStageMocks()
	p := newTestPipeline(t, m)

	m.ingestion.On("InitiateDataIngestion", mock.Anything, mock.AnythingOfType("domain.PipelineRun")).Return(ingestionArtifact, nil)
	m.validation.On("InitiateDataValidation", mock.Anything, mock.Anything, ingestionArtifact).Return(validationOK, nil)
	m.transformation.On("InitiateDataTransformation", mock.Anything, mock.Anything, ingestionArtifact, validationOK).Return(transformationArtifact, nil)
	m.trainer.On("InitiateModelTrainer", mock.Anything, mock.Anything, transformationArtifact).Return(trainerArtifact, nil)
	m.evaluation.On("InitiateModelEvaluation", mock.Anything, mock.Anything, ingestionArtifact, trainerArtifact).Return(evaluationAccepted, nil)
	m.pusher.On("InitiateModelPusher", mock.Anything, mock.Anything, evaluationAccepted).Return(pusherArtifact, nil)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RunStatusPushed, result.Status)
	assert.Equal(t, "churn", result.Run.Name)
	assert.Equal(t, filepath.Join("artifact", "10_16_2026_14_05_09"), result.Run.ArtifactDir)
	assert.Equal(t, ingestionArtifact, *result.DataIngestion)
	assert.Equal(t, validationOK, *result.DataValidation)
	assert.Equal(t, transformationArtifact, *result.DataTransformation)
	assert.Equal(t, trainerArtifact, *result.ModelTrainer)
	assert.Equal(t, evaluationAccepted, *result.ModelEvaluation)
	assert.Equal(t, pusherArtifact, *result.ModelPusher)

	m.ingestion.AssertExpectations(t)
	m.validation.AssertExpectations(t)
	m.transformation.AssertExpectations(t)
	m.trainer.AssertExpectations(t)
	m.evaluation.AssertExpectations(t)
	m.pusher.AssertExpectations(t)
}

func TestTrainingPipeline_Run_SameRunForEveryStage(t *testing.T) {
	m := newStageMocks()
	p := newTestPipeline(t, m)

	var seen []domain.PipelineRun
	record := func(args mock.Arguments) { seen = append(seen, args.Get(1).(domain.PipelineRun)) }

	m.ingestion.On("InitiateDataIngestion", mock.Anything, mock.Anything).Run(record).Return(ingestionArtifact, nil)
	m.validation.On("InitiateDataValidation", mock.Anything, mock.Anything, mock.Anything).Run(record).Return(validationOK, nil)
	m.transformation.On("InitiateDataTransformation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(record).Return(transformationArtifact, nil)
	m.trainer.On("InitiateModelTrainer", mock.Anything, mock.Anything, mock.Anything).Run(record).Return(trainerArtifact, nil)
	m.evaluation.On("InitiateModelEvaluation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(record).Return(evaluationAccepted, nil)
	m.pusher.On("InitiateModelPusher", mock.Anything, mock.Anything, mock.Anything).Run(record).Return(pusherArtifact, nil)

	result, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, seen, 6)
	for _, run := range seen {
		assert.Equal(t, result.Run, run)
	}
}

func TestTrainingPipeline_Run_ValidationFailedStops(t *testing.T) {
	m := newStageMocks()
	p := newTestPipeline(t, m)

	failed := domain.NewDataValidationArtifact(false, "schema mismatch", "/tmp/report.json")
	m.ingestion.On("InitiateDataIngestion", mock.Anything, mock.Anything).Return(ingestionArtifact, nil)
	m.validation.On("InitiateDataValidation", mock.Anything, mock.Anything, ingestionArtifact).Return(failed, nil)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RunStatusValidationFailed, result.Status)
	assert.Equal(t, failed, *result.DataValidation)
	assert.Nil(t, result.DataTransformation)
	assert.Nil(t, result.ModelTrainer)
	assert.Nil(t, result.ModelEvaluation)
	assert.Nil(t, result.ModelPusher)
	m.transformation.AssertNotCalled(t, "InitiateDataTransformation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTrainingPipeline_Run_ModelRejectedSkipsPush(t *testing.T) {
	m := newStageMocks()
	p := newTestPipeline(t, m)

	rejected := domain.NewModelEvaluationArtifact(false, -0.02, "s3://models/model.pkl", "/models/m1.pkl")
	m.ingestion.On("InitiateDataIngestion", mock.Anything, mock.Anything).Return(ingestionArtifact, nil)
	m.validation.On("InitiateDataValidation", mock.Anything, mock.Anything, mock.Anything).Return(validationOK, nil)
	m.transformation.On("InitiateDataTransformation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(transformationArtifact, nil)
	m.trainer.On("InitiateModelTrainer", mock.Anything, mock.Anything, mock.Anything).Return(trainerArtifact, nil)
	m.evaluation.On("InitiateModelEvaluation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(rejected, nil)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RunStatusModelRejected, result.Status)
	assert.Equal(t, rejected, *result.ModelEvaluation)
	assert.Nil(t, result.ModelPusher)
	m.pusher.AssertNotCalled(t, "InitiateModelPusher", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrainingPipeline_Run_StageErrorWrapped(t *testing.T) {
	m := newStageMocks()
	p := newTestPipeline(t, m)

	diskFull := errors.New("no space left on device")
	m.ingestion.On("InitiateDataIngestion", mock.Anything, mock.Anything).Return(ingestionArtifact, nil)
	m.validation.On("InitiateDataValidation", mock.Anything, mock.Anything, mock.Anything).Return(validationOK, nil)
	m.transformation.On("InitiateDataTransformation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DataTransformationArtifact{}, diskFull)

	result, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageTransformation, stageErr.Stage)
	assert.Equal(t, result.Run.ID, stageErr.RunID)

	assert.NotNil(t, result.DataValidation)
	assert.Nil(t, result.DataTransformation)
	assert.Empty(t, result.Status)
	m.trainer.AssertNotCalled(t, "InitiateModelTrainer", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrainingPipeline_Run_CancelledContext(t *testing.T) {
	m := newStageMocks()
	p := newTestPipeline(t, m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageIngestion, stageErr.Stage)
	assert.Nil(t, result.DataIngestion)
	m.ingestion.AssertNotCalled(t, "InitiateDataIngestion", mock.Anything, mock.Anything)
}

func TestNewTrainingPipeline_MissingStage(t *testing.T) {
	m := newStageMocks()
	stages := m.stages()
	stages.ModelTrainer = nil

	p, err := NewTrainingPipeline(config.PipelineConfig{Name: "churn"}, stages)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrStageNotConfigured)
	assert.Contains(t, err.Error(), "training")
}

func TestNewTrainingPipeline_TypedNilStage(t *testing.T) {
	m := newStageMocks()
	stages := m.stages()
	stages.ModelTrainer = (*testutil.MockModelTrainer)(nil)

	p, err := NewTrainingPipeline(config.PipelineConfig{Name: "churn"}, stages)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrStageNotConfigured)
	assert.Contains(t, err.Error(), "training")
}

func TestNewTrainingPipeline_DefaultTimestampFormat(t *testing.T) {
	m := newStageMocks()
	p, err := NewTrainingPipeline(config.PipelineConfig{Name: "churn", ArtifactDir: "out"}, m.stages())
	require.NoError(t, err)
	p.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	run := p.newRun()
	assert.Equal(t, filepath.Join("out", "01_02_2026_03_04_05"), run.ArtifactDir)
	assert.NotEqual(t, run.ID, p.newRun().ID)
}
