package catalog

import (
	"context"
	"os"
)

// FileSource reads the catalog and optional reviews tables from disk.
type FileSource struct {
	Path        string
	ReviewsPath string
}

func (f FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f FileSource) FetchReviews(ctx context.Context) (string, error) {
	if f.ReviewsPath == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.ReviewsPath)
	if err != nil {
		// reviews are auxiliary; a missing file is not a load failure
		return "", nil
	}
	return string(b), nil
}
