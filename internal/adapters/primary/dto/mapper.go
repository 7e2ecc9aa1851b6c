package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ml-training-pipeline/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				// Drop the request type name, keep the JSON path.
				ns := fe.Namespace()
				if i := strings.IndexByte(ns, '.'); i >= 0 {
					ns = ns[i+1:]
				}
				missing = append(missing, ns)
			}
			return fmt.Errorf("%w: missing required fields: %s", domain.ErrMalformedArtifact, strings.Join(missing, ", "))
		}
		return fmt.Errorf("%w: %v", domain.ErrMalformedArtifact, err)
	}
	return nil
}

func ToDataIngestionArtifact(req *DataIngestionArtifactRequest) (domain.DataIngestionArtifact, error) {
	if req == nil {
		return domain.DataIngestionArtifact{}, fmt.Errorf("%w: empty request", domain.ErrMalformedArtifact)
	}
	if err := validateRequest(req); err != nil {
		return domain.DataIngestionArtifact{}, err
	}
	return domain.NewDataIngestionArtifact(*req.TrainedFilePath, *req.TestFilePath), nil
}

func ToDataValidationArtifact(req *DataValidationArtifactRequest) (domain.DataValidationArtifact, error) {
	if req == nil {
		return domain.DataValidationArtifact{}, fmt.Errorf("%w: empty request", domain.ErrMalformedArtifact)
	}
	if err := validateRequest(req); err != nil {
		return domain.DataValidationArtifact{}, err
	}
	return domain.NewDataValidationArtifact(*req.ValidationStatus, *req.Message, *req.ValidationReportFilePath), nil
}

func ToDataTransformationArtifact(req *DataTransformationArtifactRequest) (domain.DataTransformationArtifact, error) {
	if req == nil {
		return domain.DataTransformationArtifact{}, fmt.Errorf("%w: empty request", domain.ErrMalformedArtifact)
	}
	if err := validateRequest(req); err != nil {
		return domain.DataTransformationArtifact{}, err
	}
	return domain.NewDataTransformationArtifact(
		*req.TransformedObjectFilePath,
		*req.TransformedTrainFilePath,
		*req.TransformedTestFilePath,
	), nil
}

func ToClassificationMetricArtifact(req *ClassificationMetricArtifactRequest) (domain.ClassificationMetricArtifact, error) {
	if req == nil {
		return domain.ClassificationMetricArtifact{}, fmt.Errorf("%w: empty request", domain.ErrMalformedArtifact)
	}
	if err := validateRequest(req); err != nil {
		return domain.ClassificationMetricArtifact{}, err
	}
	return domain.NewClassificationMetricArtifact(*req.F1Score, *req.PrecisionScore, *req.RecallScore), nil
}

func ToModelTrainerArtifact(req *ModelTrainerArtifactRequest) (domain.ModelTrainerArtifact, error) {
	if req == nil {
		return domain.ModelTrainerArtifact{}, fmt.Errorf("%w: empty request", domain.ErrMalformedArtifact)
	}
	// Validates metric_artifact as well.
	if err := validateRequest(req); err != nil {
		return domain.ModelTrainerArtifact{}, err
	}
	metric := domain.NewClassificationMetricArtifact(
		*req.MetricArtifact.F1Score,
		*req.MetricArtifact.PrecisionScore,
		*req.MetricArtifact.RecallScore,
	)
	return domain.NewModelTrainerArtifact(*req.TrainedModelFilePath, metric), nil
}

func ToModelEvaluationArtifact(req *ModelEvaluationArtifactRequest) (domain.ModelEvaluationArtifact, error) {
	if req == nil {
		return domain.ModelEvaluationArtifact{}, fmt.Errorf("%w: empty request", domain.ErrMalformedArtifact)
	}
	if err := validateRequest(req); err != nil {
		return domain.ModelEvaluationArtifact{}, err
	}
	return domain.NewModelEvaluationArtifact(
		*req.IsModelAccepted,
		*req.ChangedAccuracy,
		*req.S3ModelPath,
		*req.TrainedModelPath,
	), nil
}

func ToModelPusherArtifact(req *ModelPusherArtifactRequest) (domain.ModelPusherArtifact, error) {
	if req == nil {
		return domain.ModelPusherArtifact{}, fmt.Errorf("%w: empty request", domain.ErrMalformedArtifact)
	}
	if err := validateRequest(req); err != nil {
		return domain.ModelPusherArtifact{}, err
	}
	return domain.NewModelPusherArtifact(*req.BucketName, *req.S3ModelPath), nil
}
