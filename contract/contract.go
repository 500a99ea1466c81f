//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"flight-parser/domain"
	"reflect"
)

// Decoder is the external flight-log decoder.
// Keychains returned by FetchKeychains are passed back untouched to Parse.
type Decoder interface {
	RequiresKeychains() bool
	FetchKeychains(ctx context.Context, path, apiKey string) (domain.Keychains, error)
	Parse(ctx context.Context, path string, keychains domain.Keychains) (domain.FlightLog, error)
}

type Fingerprinter interface {
	Fingerprint(path string) (domain.Fingerprint, error)
}

// KeychainStore never fails: read and write problems are logged and
// reported as a miss or silently dropped.
type KeychainStore interface {
	Lookup(fp domain.Fingerprint) (domain.Keychains, bool)
	Store(fp domain.Fingerprint, keychains domain.Keychains)
}

type KeychainResolver interface {
	Resolve(ctx context.Context, path, apiKey string) (domain.Keychains, error)
}

type Downloader interface {
	Download(ctx context.Context, url string) (*domain.TmpFile, error)
}

type FlightParser interface {
	Parse(ctx context.Context, request domain.ParseRequest) (domain.ParseResult, error)
}

// Worker is a background loop run under a supervisor until ctx is done.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerName is the worker's type name, used in supervision logs.
func WorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
