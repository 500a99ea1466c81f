package services

import (
	"context"
	"errors"
	"flight-parser/contract"
	"flight-parser/domain"
	perrors "flight-parser/errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// FlightService downloads a flight log, resolves its keychains when the
// decoder needs them, decodes it and summarizes the result.
type FlightService struct {
	log         *slog.Logger
	validator   *validator.Validate
	downloader  contract.Downloader
	resolver    contract.KeychainResolver
	decoder     contract.Decoder
	apiKey      string
	previewRows int
}

func NewFlightService(
	log *slog.Logger,
	downloader contract.Downloader,
	resolver contract.KeychainResolver,
	decoder contract.Decoder,
	apiKey string,
	previewRows int,
) *FlightService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &FlightService{
		log:         log,
		validator:   validate,
		downloader:  downloader,
		resolver:    resolver,
		decoder:     decoder,
		apiKey:      apiKey,
		previewRows: previewRows,
	}
}

func (s *FlightService) Parse(ctx context.Context, request domain.ParseRequest) (domain.ParseResult, error) {
	needsKeychains := s.decoder.RequiresKeychains()
	if needsKeychains && s.apiKey == "" {
		return domain.ParseResult{}, perrors.ErrMissingAPIKey
	}
	if err := s.validator.Struct(request); err != nil {
		return domain.ParseResult{}, fmt.Errorf("%w: %s", perrors.ErrInvalidInput, describeValidation(err))
	}

	tmp, err := s.downloader.Download(ctx, request.InputURL)
	if err != nil {
		return domain.ParseResult{}, err
	}
	defer func() {
		if err := tmp.Remove(); err != nil {
			s.log.Warn("Unable to remove temporary flight log", "path", tmp.Path, "error", err)
		}
	}()

	var keychains domain.Keychains
	if needsKeychains {
		if keychains, err = s.resolver.Resolve(ctx, tmp.Path, s.apiKey); err != nil {
			return domain.ParseResult{}, err
		}
	}

	flightLog, err := s.decoder.Parse(ctx, tmp.Path, keychains)
	if err != nil {
		return domain.ParseResult{}, fmt.Errorf("%w: %w", perrors.ErrDecode, err)
	}
	if flightLog.IsEmpty() {
		return domain.ParseResult{}, perrors.ErrEmptyResult
	}

	result := s.buildResult(request, tmp, flightLog)
	s.log.Info("Flight log parsed", "file", result.File, "rows", result.Summary.Rows, "columns", result.ColumnsFound)
	return result, nil
}

func (s *FlightService) buildResult(request domain.ParseRequest, tmp *domain.TmpFile, flightLog domain.FlightLog) domain.ParseResult {
	result := domain.ParseResult{
		File:         fileName(request.InputURL, flightLog.File),
		MimeType:     tmp.RawMimeType,
		Summary:      Summarize(flightLog),
		ColumnsFound: ColumnsFound(flightLog.Columns),
	}
	if flightLog.IsText() {
		result.RawPreview = preview(flightLog.Lines, s.previewRows)
		result.TotalLines = lo.ToPtr(len(flightLog.Lines))
		result.Records = flightLog.Lines
		return result
	}
	result.RawPreview = preview(flightLog.Rows, s.previewRows)
	return result
}

func preview[T any](items []T, n int) []any {
	if n < 0 {
		n = 0
	}
	return lo.Map(items[:min(n, len(items))], func(item T, _ int) any { return item })
}

// fileName prefers the last segment of the download URL over the decoder's view
// of the file, which is only the temporary name.
func fileName(rawURL, fallback string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" {
			return base
		}
	}
	return fallback
}

func describeValidation(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	return strings.Join(lo.Map(validationErrors, func(fe validator.FieldError, _ int) string {
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("field '%s' is required", fe.Field())
		case "http_url":
			return fmt.Sprintf("field '%s' must be an http(s) url", fe.Field())
		default:
			return fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag())
		}
	}), "; ")
}
