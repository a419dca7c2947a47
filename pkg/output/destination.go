package output

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/xerrors"
)

const gcsScheme = "gs://"

// OpenDestination opens where the encoded image goes:
// "" or "-" is stdout, "gs://bucket/object" is a Cloud Storage object,
// anything else is a local file whose parent directories are created.
// Closing the returned writer finishes the upload or file.
func OpenDestination(ctx context.Context, dest string) (io.WriteCloser, error) {
	if dest == "" || dest == "-" {
		return nopCloser{os.Stdout}, nil
	}

	if strings.HasPrefix(dest, gcsScheme) {
		bucket, object, err := ParseGCSURL(dest)
		if err != nil {
			return nil, err
		}
		return openGCSObject(ctx, bucket, object)
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, xerrors.Errorf("while creating output directory: %w", err)
		}
	}
	f, err := os.Create(dest)
	if err != nil {
		return nil, xerrors.Errorf("while creating output file: %w", err)
	}
	return f, nil
}

// ParseGCSURL splits gs://bucket/object into its parts
func ParseGCSURL(url string) (bucket, object string, err error) {
	if !strings.HasPrefix(url, gcsScheme) {
		return "", "", xerrors.Errorf("%q is not a gs:// URL", url)
	}
	rest := strings.TrimPrefix(url, gcsScheme)
	slash := strings.IndexByte(rest, '/')
	if slash <= 0 || slash == len(rest)-1 {
		return "", "", xerrors.Errorf("%q must name both a bucket and an object", url)
	}
	return rest[:slash], rest[slash+1:], nil
}

// gcsObjectWriter closes the client together with the object writer
type gcsObjectWriter struct {
	*storage.Writer
	client *storage.Client
}

func (g *gcsObjectWriter) Close() error {
	defer g.client.Close()
	if err := g.Writer.Close(); err != nil {
		return xerrors.Errorf("while finishing GCS upload: %w", err)
	}
	return nil
}

func openGCSObject(ctx context.Context, bucket, object string) (io.WriteCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, xerrors.Errorf("while creating GCS client: %w", err)
	}

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentTypeFor(object)
	return &gcsObjectWriter{Writer: w, client: client}, nil
}

func contentTypeFor(object string) string {
	if FormatForPath(object) == FormatPNG {
		return "image/png"
	}
	return "image/x-portable-pixmap"
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
