package domain

import "fmt"

// Artifact records are the hand-off values between training pipeline stages.
// Each one is built once by the stage that produced it and then only read.
// All fields are plain values so records compare with == and copy cleanly.

// DataIngestionArtifact locates the raw train/test splits after ingestion.
type DataIngestionArtifact struct {
	TrainedFilePath string `json:"trained_file_path"`
	TestFilePath    string `json:"test_file_path"`
}

// NewDataIngestionArtifact builds the ingestion stage's output record.
func NewDataIngestionArtifact(trainedFilePath, testFilePath string) DataIngestionArtifact {
	return DataIngestionArtifact{
		TrainedFilePath: trainedFilePath,
		TestFilePath:    testFilePath,
	}
}

func (a DataIngestionArtifact) String() string {
	return fmt.Sprintf("DataIngestionArtifact{trained_file_path=%q test_file_path=%q}",
		a.TrainedFilePath, a.TestFilePath)
}

// DataValidationArtifact is the outcome of schema and data validation.
// A failed validation is ValidationStatus=false, not an error.
type DataValidationArtifact struct {
	ValidationStatus         bool   `json:"validation_status"`
	Message                  string `json:"message"`
	ValidationReportFilePath string `json:"validation_report_file_path"`
}

// NewDataValidationArtifact builds the validation stage's output record.
func NewDataValidationArtifact(validationStatus bool, message, validationReportFilePath string) DataValidationArtifact {
	return DataValidationArtifact{
		ValidationStatus:         validationStatus,
		Message:                  message,
		ValidationReportFilePath: validationReportFilePath,
	}
}

func (a DataValidationArtifact) String() string {
	return fmt.Sprintf("DataValidationArtifact{validation_status=%t message=%q validation_report_file_path=%q}",
		a.ValidationStatus, a.Message, a.ValidationReportFilePath)
}

// DataTransformationArtifact locates the fitted transform object and the transformed datasets.
type DataTransformationArtifact struct {
	TransformedObjectFilePath string `json:"transformed_object_file_path"`
	TransformedTrainFilePath  string `json:"transformed_train_file_path"`
	TransformedTestFilePath   string `json:"transformed_test_file_path"`
}

// NewDataTransformationArtifact builds the transformation stage's output record.
func NewDataTransformationArtifact(transformedObjectFilePath, transformedTrainFilePath, transformedTestFilePath string) DataTransformationArtifact {
	return DataTransformationArtifact{
		TransformedObjectFilePath: transformedObjectFilePath,
		TransformedTrainFilePath:  transformedTrainFilePath,
		TransformedTestFilePath:   transformedTestFilePath,
	}
}

func (a DataTransformationArtifact) String() string {
	return fmt.Sprintf("DataTransformationArtifact{transformed_object_file_path=%q transformed_train_file_path=%q transformed_test_file_path=%q}",
		a.TransformedObjectFilePath, a.TransformedTrainFilePath, a.TransformedTestFilePath)
}

// ClassificationMetricArtifact holds classification quality scores.
// Scores are carried as given; no range is enforced.
type ClassificationMetricArtifact struct {
	F1Score        float64 `json:"f1_score"`
	PrecisionScore float64 `json:"precision_score"`
	RecallScore    float64 `json:"recall_score"`
}

// NewClassificationMetricArtifact builds a metric record from precomputed scores.
func NewClassificationMetricArtifact(f1Score, precisionScore, recallScore float64) ClassificationMetricArtifact {
	return ClassificationMetricArtifact{
		F1Score:        f1Score,
		PrecisionScore: precisionScore,
		RecallScore:    recallScore,
	}
}

func (a ClassificationMetricArtifact) String() string {
	return fmt.Sprintf("ClassificationMetricArtifact{f1_score=%g precision_score=%g recall_score=%g}",
		a.F1Score, a.PrecisionScore, a.RecallScore)
}

// ModelTrainerArtifact is the trained model location plus its metrics.
// MetricArtifact is held by value, so the trainer artifact owns its own copy.
type ModelTrainerArtifact struct {
	TrainedModelFilePath string                       `json:"trained_model_file_path"`
	MetricArtifact       ClassificationMetricArtifact `json:"metric_artifact"`
}

// NewModelTrainerArtifact builds the training stage's output record around a copy of metricArtifact.
func NewModelTrainerArtifact(trainedModelFilePath string, metricArtifact ClassificationMetricArtifact) ModelTrainerArtifact {
	return ModelTrainerArtifact{
		TrainedModelFilePath: trainedModelFilePath,
		MetricArtifact:       metricArtifact,
	}
}

func (a ModelTrainerArtifact) String() string {
	return fmt.Sprintf("ModelTrainerArtifact{trained_model_file_path=%q metric_artifact=%s}",
		a.TrainedModelFilePath, a.MetricArtifact)
}

// ModelEvaluationArtifact records whether the new model supersedes the deployed one.
type ModelEvaluationArtifact struct {
	IsModelAccepted  bool    `json:"is_model_accepted"`
	ChangedAccuracy  float64 `json:"changed_accuracy"`
	S3ModelPath      string  `json:"s3_model_path"`
	TrainedModelPath string  `json:"trained_model_path"`
}

// NewModelEvaluationArtifact builds the evaluation stage's output record.
func NewModelEvaluationArtifact(isModelAccepted bool, changedAccuracy float64, s3ModelPath, trainedModelPath string) ModelEvaluationArtifact {
	return ModelEvaluationArtifact{
		IsModelAccepted:  isModelAccepted,
		ChangedAccuracy:  changedAccuracy,
		S3ModelPath:      s3ModelPath,
		TrainedModelPath: trainedModelPath,
	}
}

func (a ModelEvaluationArtifact) String() string {
	return fmt.Sprintf("ModelEvaluationArtifact{is_model_accepted=%t changed_accuracy=%g s3_model_path=%q trained_model_path=%q}",
		a.IsModelAccepted, a.ChangedAccuracy, a.S3ModelPath, a.TrainedModelPath)
}

// ModelPusherArtifact is the destination of a deployed model.
type ModelPusherArtifact struct {
	BucketName  string `json:"bucket_name"`
	S3ModelPath string `json:"s3_model_path"`
}

// NewModelPusherArtifact builds the pusher stage's output record.
func NewModelPusherArtifact(bucketName, s3ModelPath string) ModelPusherArtifact {
	return ModelPusherArtifact{
		BucketName:  bucketName,
		S3ModelPath: s3ModelPath,
	}
}

func (a ModelPusherArtifact) String() string {
	return fmt.Sprintf("ModelPusherArtifact{bucket_name=%q s3_model_path=%q}",
		a.BucketName, a.S3ModelPath)
}
