package kmeans

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// modelData is the frozen model artifact exported by the training pipeline:
// cluster centers plus the standard scaler parameters.
type modelData struct {
	ClusterCenters [][]float64 `json:"cluster_centers"`
	Scaler         scalerData  `json:"scaler"`
	NClusters      int         `json:"n_clusters"`
}

type scalerData struct {
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
	FeatureNames []string  `json:"feature_names"`
}

// StandardScaler standardizes features with the frozen training parameters:
// z = (x - mean) / scale.
type StandardScaler struct {
	mean         []float64
	scale        []float64
	featureNames []string
}

// NewStandardScaler creates a scaler from frozen mean/scale vectors.
func NewStandardScaler(mean, scale []float64, featureNames []string) (*StandardScaler, error) {
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("%w: mean has %d entries, scale has %d", domain.ErrModelDimensionMismatch, len(mean), len(scale))
	}
	return &StandardScaler{mean: mean, scale: scale, featureNames: featureNames}, nil
}

// Transform standardizes one feature vector.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.mean) {
		return nil, fmt.Errorf("%w: expected %d features, got %d", domain.ErrModelDimensionMismatch, len(s.mean), len(features))
	}
	transformed := make([]float64, len(features))
	for i, value := range features {
		transformed[i] = (value - s.mean[i]) / s.scale[i]
	}
	return transformed, nil
}

// FeatureNames returns the feature order the model was trained on.
func (s *StandardScaler) FeatureNames() []string {
	return s.featureNames
}

// Predictor assigns cluster ids by nearest centroid over standardized
// features. Read-only after construction, safe for concurrent use.
type Predictor struct {
	centers [][]float64
	scaler  *StandardScaler
}

var _ domain.ClusterPredictor = (*Predictor)(nil)

// LoadPredictor reads the frozen model artifact from disk.
func LoadPredictor(path string) (*Predictor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var data modelData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	predictor, err := NewPredictor(data.ClusterCenters, data.Scaler.Mean, data.Scaler.Scale, data.Scaler.FeatureNames)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":     path,
		"clusters": len(data.ClusterCenters),
		"features": len(data.Scaler.FeatureNames),
	}).Info("cluster model loaded")
	return predictor, nil
}

// NewPredictor builds a predictor from cluster centers and scaler parameters.
func NewPredictor(centers [][]float64, mean, scale []float64, featureNames []string) (*Predictor, error) {
	if len(centers) == 0 {
		return nil, fmt.Errorf("%w: model has no cluster centers", domain.ErrInvalidArgument)
	}
	scaler, err := NewStandardScaler(mean, scale, featureNames)
	if err != nil {
		return nil, err
	}
	for i, center := range centers {
		if len(center) != len(mean) {
			return nil, fmt.Errorf("%w: center %d has %d dimensions, scaler has %d", domain.ErrModelDimensionMismatch, i, len(center), len(mean))
		}
	}
	return &Predictor{centers: centers, scaler: scaler}, nil
}

// Predict standardizes the feature vector and returns the index of the
// nearest cluster center by Euclidean distance.
func (p *Predictor) Predict(features domain.FeatureVector) (int, error) {
	point, err := p.scaler.Transform(features.Values())
	if err != nil {
		return 0, err
	}

	nearest := 0
	minDistance := math.Inf(1)
	for i, center := range p.centers {
		if d := squaredDistance(point, center); d < minDistance {
			minDistance = d
			nearest = i
		}
	}
	return nearest, nil
}

// NClusters returns the number of centers in the frozen model.
func (p *Predictor) NClusters() int {
	return len(p.centers)
}

// squaredDistance compares points without the final sqrt: the ordering of
// squared distances matches the ordering of distances.
func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
