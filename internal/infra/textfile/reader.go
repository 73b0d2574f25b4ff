package textfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/ports"
)

type Reader struct {
	defaultEncoding string
}

type Option func(*Reader)

func WithDefaultEncoding(name string) Option {
	return func(r *Reader) { r.defaultEncoding = name }
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{defaultEncoding: domain.DefaultEncoding}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ResourceReader = (*Reader)(nil)

// ReadResource reads the whole file at path and decodes it. An empty encoding
// falls back to the reader's default.
func (r *Reader) ReadResource(path string, encoding string) (domain.TextResource, error) {
	if strings.TrimSpace(encoding) == "" {
		encoding = r.defaultEncoding
	}

	codec, err := Lookup(encoding)
	if err != nil {
		return domain.TextResource{}, &domain.OpError{
			Op:   "textfile.encoding",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	b, err := readAll(path)
	if err != nil {
		return domain.TextResource{}, err
	}

	text, err := codec.Decode(b)
	if err != nil {
		return domain.TextResource{}, &domain.OpError{
			Op:   "textfile.decode",
			Kind: domain.KindDecoding,
			Path: path,
			Err:  err,
		}
	}

	return domain.TextResource{
		Path:     path,
		Encoding: codec.Name,
		Content:  text,
	}, nil
}

// readAll holds the file open only for the duration of the read.
func readAll(path string) (b []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			b, err = nil, &domain.OpError{
				Op:   "textfile.close",
				Kind: domain.KindUnreadable,
				Path: path,
				Err:  cerr,
			}
		}
	}()

	b, err = io.ReadAll(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "textfile.read",
			Kind: domain.KindUnreadable,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrUnreadable, err),
		}
	}
	return b, nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.OpError{
			Op:   "textfile.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
		}
	}
	return &domain.OpError{
		Op:   "textfile.open",
		Kind: domain.KindUnreadable,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrUnreadable, err),
	}
}
