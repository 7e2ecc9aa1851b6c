package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"unicode/utf8"

	"ml-training-pipeline/internal/core/domain"
)

type ArtifactKind string

const (
	KindDataIngestion        ArtifactKind = "data_ingestion"
	KindDataValidation       ArtifactKind = "data_validation"
	KindDataTransformation   ArtifactKind = "data_transformation"
	KindClassificationMetric ArtifactKind = "classification_metric"
	KindModelTrainer         ArtifactKind = "model_trainer"
	KindModelEvaluation      ArtifactKind = "model_evaluation"
	KindModelPusher          ArtifactKind = "model_pusher"
)

var decoders = map[ArtifactKind]func([]byte) (fmt.Stringer, error){
	KindDataIngestion:        stringer(DecodeDataIngestionArtifact),
	KindDataValidation:       stringer(DecodeDataValidationArtifact),
	KindDataTransformation:   stringer(DecodeDataTransformationArtifact),
	KindClassificationMetric: stringer(DecodeClassificationMetricArtifact),
	KindModelTrainer:         stringer(DecodeModelTrainerArtifact),
	KindModelEvaluation:      stringer(DecodeModelEvaluationArtifact),
	KindModelPusher:          stringer(DecodeModelPusherArtifact),
}

// Kinds lists the artifact kinds Decode accepts, sorted.
func Kinds() []ArtifactKind {
	kinds := make([]ArtifactKind, 0, len(decoders))
	for k := range decoders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Decode builds the artifact record of the given kind from a JSON document.
func Decode(kind ArtifactKind, data []byte) (fmt.Stringer, error) {
	decode, ok := decoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownArtifactKind, kind)
	}
	return decode(data)
}

func DecodeDataIngestionArtifact(data []byte) (domain.DataIngestionArtifact, error) {
	return decodeWith(data, ToDataIngestionArtifact)
}

func DecodeDataValidationArtifact(data []byte) (domain.DataValidationArtifact, error) {
	return decodeWith(data, ToDataValidationArtifact)
}

func DecodeDataTransformationArtifact(data []byte) (domain.DataTransformationArtifact, error) {
	return decodeWith(data, ToDataTransformationArtifact)
}

func DecodeClassificationMetricArtifact(data []byte) (domain.ClassificationMetricArtifact, error) {
	return decodeWith(data, ToClassificationMetricArtifact)
}

func DecodeModelTrainerArtifact(data []byte) (domain.ModelTrainerArtifact, error) {
	return decodeWith(data, ToModelTrainerArtifact)
}

func DecodeModelEvaluationArtifact(data []byte) (domain.ModelEvaluationArtifact, error) {
	return decodeWith(data, ToModelEvaluationArtifact)
}

func DecodeModelPusherArtifact(data []byte) (domain.ModelPusherArtifact, error) {
	return decodeWith(data, ToModelPusherArtifact)
}

// decodeWith rejects invalid UTF-8, unknown, mis-cased or repeated fields,
// values of the wrong JSON kind and trailing data, then hands the request to
// its mapper.
func decodeWith[R any, A any](data []byte, to func(*R) (A, error)) (A, error) {
	var zero A
	req := new(R)

	if !utf8.Valid(data) {
		return zero, fmt.Errorf("%w: invalid UTF-8", domain.ErrMalformedArtifact)
	}
	if err := checkKeys(data, reflect.TypeOf(req)); err != nil {
		return zero, fmt.Errorf("%w: %v", domain.ErrMalformedArtifact, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return zero, fmt.Errorf("%w: %v", domain.ErrMalformedArtifact, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return zero, fmt.Errorf("%w: unexpected data after artifact", domain.ErrMalformedArtifact)
	}

	return to(req)
}

func stringer[A fmt.Stringer](decode func([]byte) (A, error)) func([]byte) (fmt.Stringer, error) {
	return func(data []byte) (fmt.Stringer, error) {
		a, err := decode(data)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}
