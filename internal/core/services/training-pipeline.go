package services

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-training-pipeline/internal/config"
	"ml-training-pipeline/internal/core/domain"
	"ml-training-pipeline/internal/core/ports/output"
)

// TrainingPipeline runs the stages in order and hands each stage the
// artifacts it needs. It stops early, without error, when validation fails
// or the evaluated model is not accepted.
type TrainingPipeline struct {
	cfg    config.PipelineConfig
	stages ports.Stages

	now func() time.Time
}

func NewTrainingPipeline(cfg config.PipelineConfig, stages ports.Stages) (*TrainingPipeline, error) {
	missing := map[domain.Stage]bool{
		domain.StageIngestion:      isNil(stages.DataIngestion),
		domain.StageValidation:     isNil(stages.DataValidation),
		domain.StageTransformation: isNil(stages.DataTransformation),
		domain.StageTraining:       isNil(stages.ModelTrainer),
		domain.StageEvaluation:     isNil(stages.ModelEvaluation),
		domain.StagePusher:         isNil(stages.ModelPusher),
	}
	for _, stage := range stageOrder {
		if missing[stage] {
			return nil, fmt.Errorf("%w: %s", domain.ErrStageNotConfigured, stage)
		}
	}

	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = config.DefaultTimestampFormat
	}

	return &TrainingPipeline{cfg: cfg, stages: stages, now: time.Now}, nil
}

// isNil also catches typed nils, e.g. a nil *T stored in a stage interface.
func isNil(stage any) bool {
	if stage == nil {
		return true
	}
	v := reflect.ValueOf(stage)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

var stageOrder = []domain.Stage{
	domain.StageIngestion,
	domain.StageValidation,
	domain.StageTransformation,
	domain.StageTraining,
	domain.StageEvaluation,
	domain.StagePusher,
}

func (p *TrainingPipeline) newRun() domain.PipelineRun {
	started := p.now()
	return domain.PipelineRun{
		ID:          uuid.New(),
		Name:        p.cfg.Name,
		ArtifactDir: filepath.Join(p.cfg.ArtifactDir, started.Format(p.cfg.TimestampFormat)),
		StartedAt:   started,
	}
}

// Run executes one pipeline run. The returned error is non-nil only when a
// stage fails or ctx is done; the partial result is still returned then.
func (p *TrainingPipeline) Run(ctx context.Context) (*domain.PipelineResult, error) {
	run := p.newRun()
	result := &domain.PipelineResult{Run: run}

	logger := log.WithFields(log.Fields{
		"run_id":       run.ID.String(),
		"pipeline":     run.Name,
		"artifact_dir": run.ArtifactDir,
	})
	logger.Info("training pipeline started")

	ingestion, err := runStage(ctx, run, logger, domain.StageIngestion, func() (domain.DataIngestionArtifact, error) {
		return p.stages.DataIngestion.InitiateDataIngestion(ctx, run)
	})
	if err != nil {
		return result, err
	}
	result.DataIngestion = &ingestion

	validation, err := runStage(ctx, run, logger, domain.StageValidation, func() (domain.DataValidationArtifact, error) {
		return p.stages.DataValidation.InitiateDataValidation(ctx, run, ingestion)
	})
	if err != nil {
		return result, err
	}
	result.DataValidation = &validation

	if !validation.ValidationStatus {
		result.Status = domain.RunStatusValidationFailed
		logger.WithFields(log.Fields{
			"message":     validation.Message,
			"report_path": validation.ValidationReportFilePath,
		}).Warn("data validation failed, stopping pipeline")
		return result, nil
	}

	transformation, err := runStage(ctx, run, logger, domain.StageTransformation, func() (domain.DataTransformationArtifact, error) {
		return p.stages.DataTransformation.InitiateDataTransformation(ctx, run, ingestion, validation)
	})
	if err != nil {
		return result, err
	}
	result.DataTransformation = &transformation

	trainer, err := runStage(ctx, run, logger, domain.StageTraining, func() (domain.ModelTrainerArtifact, error) {
		return p.stages.ModelTrainer.InitiateModelTrainer(ctx, run, transformation)
	})
	if err != nil {
		return result, err
	}
	result.ModelTrainer = &trainer

	evaluation, err := runStage(ctx, run, logger, domain.StageEvaluation, func() (domain.ModelEvaluationArtifact, error) {
		return p.stages.ModelEvaluation.InitiateModelEvaluation(ctx, run, ingestion, trainer)
	})
	if err != nil {
		return result, err
	}
	result.ModelEvaluation = &evaluation

	if !evaluation.IsModelAccepted {
		result.Status = domain.RunStatusModelRejected
		logger.WithField("changed_accuracy", evaluation.ChangedAccuracy).
			Info("trained model not accepted, skipping push")
		return result, nil
	}

	pusher, err := runStage(ctx, run, logger, domain.StagePusher, func() (domain.ModelPusherArtifact, error) {
		return p.stages.ModelPusher.InitiateModelPusher(ctx, run, evaluation)
	})
	if err != nil {
		return result, err
	}
	result.ModelPusher = &pusher
	result.Status = domain.RunStatusPushed

	logger.WithFields(log.Fields{
		"bucket_name":   pusher.BucketName,
		"s3_model_path": pusher.S3ModelPath,
	}).Info("training pipeline completed")

	return result, nil
}

func runStage[T fmt.Stringer](ctx context.Context, run domain.PipelineRun, logger *log.Entry, stage domain.Stage, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, &domain.StageError{Stage: stage, RunID: run.ID, Err: err}
	}

	stageLogger := logger.WithField("stage", string(stage))
	start := time.Now()

	artifact, err := fn()
	if err != nil {
		stageLogger.WithError(err).Error("stage failed")
		return zero, &domain.StageError{Stage: stage, RunID: run.ID, Err: err}
	}

	stageLogger.WithFields(log.Fields{
		"latency_ms": time.Since(start).Milliseconds(),
		"artifact":   artifact.String(),
	}).Info("stage completed")

	return artifact, nil
}
