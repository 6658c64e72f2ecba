package kmeans

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// LoadClusterTable reads the cluster analysis artifact: a map of cluster id
// to its training-derived profile (focus, intensity, recommended days).
func LoadClusterTable(path string) (domain.ClusterTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cluster table: %w", err)
	}

	table, err := ParseClusterTable(raw)
	if err != nil {
		return nil, fmt.Errorf("cluster table %s: %w", path, err)
	}

	log.WithFields(log.Fields{"path": path, "clusters": len(table)}).Info("cluster table loaded")
	return table, nil
}

// ParseClusterTable decodes the JSON cluster analysis document.
func ParseClusterTable(raw []byte) (domain.ClusterTable, error) {
	var table domain.ClusterTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("decode cluster table: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: cluster table is empty", domain.ErrInvalidArgument)
	}
	return table, nil
}
