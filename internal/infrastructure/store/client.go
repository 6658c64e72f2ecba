// Package store implements the user and plan repositories on Cloud Firestore.
package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const (
	usersCollection = "users"
	plansCollection = "plans"
)

// NewClient connects to Firestore for the given project. When credentialsFile
// is empty the client falls back to application default credentials.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	log.WithField("project", projectID).Info("firestore client connected")
	return client, nil
}
