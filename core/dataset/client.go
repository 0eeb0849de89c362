package dataset

import (
	"context"
	"io"
)

const (
	datasetsPath = "/datasets"
	uploadsPath  = "/uploads"

	uploadField = "files"
)

//go:generate mockery --name=Client -r --case underscore --with-expecter --structname=Client --filename=client.go --output=./mocks

// Client is the catalog API transport. Implementations decode successful
// JSON responses into out and return an error for any non-2xx status.
// Base URL, credentials and timeouts are the implementation's concern.
type Client interface {
	Get(ctx context.Context, path string, out interface{}) error
	PostJSON(ctx context.Context, path string, body, out interface{}) error
	PostFiles(ctx context.Context, path string, files []FormFile, out interface{}) error
}

// FormFile is one part of a multipart upload. Open may be called more than
// once if the transport retries.
type FormFile struct {
	Field    string
	FileName string
	Open     func() (io.ReadCloser, error)
}

type correlationIDKey struct{}

// WithCorrelationID tags every request made with ctx as belonging to the
// same publish.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}
