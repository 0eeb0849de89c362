package dataset

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"
)

type uploadResponse struct {
	ID string `json:"id"`
}

// Uploader stages and uploads artefacts one at a time.
type Uploader struct {
	client Client
	stager *Stager
	logger log.Logger
}

func NewUploader(client Client, stager *Stager, logger log.Logger) *Uploader {
	if stager == nil {
		stager = NewStager("")
	}
	if logger == nil {
		logger = log.NewNoop()
	}
	return &Uploader{
		client: client,
		stager: stager,
		logger: logger,
	}
}

// UploadAll uploads artefacts in order and returns their server-assigned IDs
// in the same order. It stops at the first failure and returns the IDs
// uploaded so far alongside the error; those uploads are not rolled back.
func (u *Uploader) UploadAll(ctx context.Context, artefacts []NamedArtefact) ([]string, error) {
	ids := make([]string, 0, len(artefacts))
	for _, na := range artefacts {
		id, err := u.upload(ctx, na)
		if err != nil {
			return ids, err
		}
		u.logger.Debug("uploaded artefact", "name", na.Name, "kind", na.Artefact.Kind().String(), "upload_id", id)
		ids = append(ids, id)
	}
	return ids, nil
}

func (u *Uploader) upload(ctx context.Context, na NamedArtefact) (string, error) {
	var resp uploadResponse
	err := u.stager.Stage(na.Artefact, func(f StagedFile) error {
		return u.client.PostFiles(ctx, uploadsPath, []FormFile{{
			Field:    uploadField,
			FileName: na.FileName(),
			Open:     f.Open,
		}}, &resp)
	})
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("upload %q: %w", na.Name, ErrEmptyID)
	}
	return resp.ID, nil
}
