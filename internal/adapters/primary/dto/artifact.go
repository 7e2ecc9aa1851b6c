package dto

// Request shapes for building artifact records from untyped input such as a
// JSON document written by a stage. Every field is a pointer so a missing
// field can be told apart from a zero value; all of them are required.

type DataIngestionArtifactRequest struct {
	TrainedFilePath *string `json:"trained_file_path" validate:"required"`
	TestFilePath    *string `json:"test_file_path" validate:"required"`
}

type DataValidationArtifactRequest struct {
	ValidationStatus         *bool   `json:"validation_status" validate:"required"`
	Message                  *string `json:"message" validate:"required"`
	ValidationReportFilePath *string `json:"validation_report_file_path" validate:"required"`
}

type DataTransformationArtifactRequest struct {
	TransformedObjectFilePath *string `json:"transformed_object_file_path" validate:"required"`
	TransformedTrainFilePath  *string `json:"transformed_train_file_path" validate:"required"`
	TransformedTestFilePath   *string `json:"transformed_test_file_path" validate:"required"`
}

type ClassificationMetricArtifactRequest struct {
	F1Score        *float64 `json:"f1_score" validate:"required"`
	PrecisionScore *float64 `json:"precision_score" validate:"required"`
	RecallScore    *float64 `json:"recall_score" validate:"required"`
}

type ModelTrainerArtifactRequest struct {
	TrainedModelFilePath *string                             `json:"trained_model_file_path" validate:"required"`
	MetricArtifact       *ClassificationMetricArtifactRequest `json:"metric_artifact" validate:"required"`
}

type ModelEvaluationArtifactRequest struct {
	IsModelAccepted  *bool    `json:"is_model_accepted" validate:"required"`
	ChangedAccuracy  *float64 `json:"changed_accuracy" validate:"required"`
	S3ModelPath      *string  `json:"s3_model_path" validate:"required"`
	TrainedModelPath *string  `json:"trained_model_path" validate:"required"`
}

type ModelPusherArtifactRequest struct {
	BucketName  *string `json:"bucket_name" validate:"required"`
	S3ModelPath *string `json:"s3_model_path" validate:"required"`
}
