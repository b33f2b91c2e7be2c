package pinning

import (
	"context"
	"net/http"
	"regexp"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	// Register the file:// and mem:// bucket schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

var hashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// blobPinner keeps uploads in a bucket under their SHA256 and serves them back.
type blobPinner struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobPinner opens the bucket at bucketURL, e.g. mem:// or file:///var/lib/pins.
func NewBlobPinner(ctx context.Context, bucketURL, publicBaseURL string) (*blobPinner, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", bucketURL)
	}

	return &blobPinner{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

func (p *blobPinner) Configured() bool {
	return true
}

// Pin is idempotent: identical content maps to the same key.
func (p *blobPinner) Pin(ctx context.Context, upload *entity.PinUpload) (*entity.PinnedFile, error) {
	hash := util.ContentHash(upload.Content)

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(upload.Content)
	}

	opts := &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"name": upload.Name},
	}
	if err := p.bucket.WriteAll(ctx, hash, upload.Content, opts); err != nil {
		return nil, errors.Wrap(err, "write blob")
	}

	return &entity.PinnedFile{
		Hash: hash,
		URL:  p.publicBaseURL + hash,
	}, nil
}

// ReadPin returns ErrPinNotFound for malformed or unknown hashes.
func (p *blobPinner) ReadPin(ctx context.Context, hash string) ([]byte, string, error) {
	if !hashPattern.MatchString(hash) {
		return nil, "", domainerrors.ErrPinNotFound
	}

	attrs, err := p.bucket.Attributes(ctx, hash)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrPinNotFound
		}

		return nil, "", errors.Wrap(err, "read blob attributes")
	}

	content, err := p.bucket.ReadAll(ctx, hash)
	if err != nil {
		return nil, "", errors.Wrap(err, "read blob")
	}

	return content, attrs.ContentType, nil
}

// Close releases the bucket.
func (p *blobPinner) Close() error {
	return errors.WithStack(p.bucket.Close())
}
