package services

import (
	"context"
	"flight-parser/decoder"
	"flight-parser/domain"
	perrors "flight-parser/errors"
	"flight-parser/mocks"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const flightURL = "https://storage.example.com/logs/DJIFlightRecord_2024-05-01.txt"

func tmpFileWith(t *testing.T, content string) *domain.TmpFile {
	t.Helper()
	path := writeTempFile(t, []byte(content))
	return &domain.TmpFile{Path: path, Size: int64(len(content)), RawMimeType: "text/plain; charset=utf-8"}
}

func TestFlightService_Parse_TextDecoder(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	downloader := mocks.NewMockDownloader(ctrl)
	resolver := mocks.NewMockKeychainResolver(ctrl)
	tmp := tmpFileWith(t, "10,20,30\n11,21,31\n")

	downloader.EXPECT().Download(gomock.Any(), flightURL).Return(tmp, nil)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// No API key: the text decoder does not need keychains.
	service := NewFlightService(log, downloader, resolver, decoder.NewTextDecoder(log), "", 1)
	result, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: flightURL})

	req.NoError(err)
	req.Equal("DJIFlightRecord_2024-05-01.txt", result.File)
	req.NotNil(result.TotalLines)
	req.Equal(2, *result.TotalLines)
	req.Len(result.Records, 2)
	req.Equal([]string{"10", "20", "30"}, result.Records[0].Values)
	req.Len(result.RawPreview, 1)
	req.Empty(result.ColumnsFound)
	req.Equal(2, result.Summary.Rows)

	_, err = os.Stat(tmp.Path)
	req.ErrorIs(err, os.ErrNotExist, "temporary file must be removed")
}

func TestFlightService_Parse_KeychainDecoder(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	keychains := []any{"chain"}

	setup := func(t *testing.T, apiKey string) (*FlightService, *mocks.MockDownloader, *mocks.MockKeychainResolver, *mocks.MockDecoder) {
		ctrl := gomock.NewController(t)
		downloader := mocks.NewMockDownloader(ctrl)
		resolver := mocks.NewMockKeychainResolver(ctrl)
		dec := mocks.NewMockDecoder(ctrl)
		dec.EXPECT().RequiresKeychains().Return(true).AnyTimes()
		return NewFlightService(log, downloader, resolver, dec, apiKey, 5), downloader, resolver, dec
	}

	t.Run("success", func(t *testing.T) {
		req := require.New(t)
		service, downloader, resolver, dec := setup(t, "api-key")
		tmp := tmpFileWith(t, "binary")

		downloader.EXPECT().Download(gomock.Any(), flightURL).Return(tmp, nil)
		resolver.EXPECT().Resolve(gomock.Any(), tmp.Path, "api-key").Return(keychains, nil)
		dec.EXPECT().Parse(gomock.Any(), tmp.Path, keychains).Return(domain.FlightLog{
			Columns: []string{"OSD.altitude", "OSD.latitude", "OSD.longitude"},
			Rows: []map[string]any{
				{"OSD.altitude": 1.0, "OSD.latitude": 10.0, "OSD.longitude": 20.0},
				{"OSD.altitude": 3.0, "OSD.latitude": 11.0, "OSD.longitude": 21.0},
			},
		}, nil)

		result, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: flightURL})

		req.NoError(err)
		req.Equal([]string{"altitude", "latitude", "longitude"}, result.ColumnsFound)
		req.Len(result.RawPreview, 2)
		req.Nil(result.TotalLines)
		req.Nil(result.Records)
		req.Equal(2.0, result.Summary.Metrics["altitude"].Mean)
		req.Equal(&domain.Coordinate{Latitude: 11, Longitude: 21}, result.Summary.End)
		_, err = os.Stat(tmp.Path)
		req.ErrorIs(err, os.ErrNotExist)
	})

	t.Run("missing api key", func(t *testing.T) {
		req := require.New(t)
		service, downloader, _, _ := setup(t, "")
		downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: flightURL})

		req.ErrorIs(err, perrors.ErrMissingAPIKey)
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, input := range []string{"", "not a url", "ftp://host/file.txt"} {
			t.Run(input, func(t *testing.T) {
				req := require.New(t)
				service, downloader, _, _ := setup(t, "api-key")
				downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Times(0)

				_, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: input})

				req.ErrorIs(err, perrors.ErrInvalidInput)
				req.Contains(err.Error(), "input_url")
			})
		}
	})

	t.Run("download failure", func(t *testing.T) {
		req := require.New(t)
		service, downloader, resolver, _ := setup(t, "api-key")
		downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: remote host answered 404", perrors.ErrDownload))
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: flightURL})

		req.ErrorIs(err, perrors.ErrDownload)
	})

	t.Run("key resolution failure removes the file", func(t *testing.T) {
		req := require.New(t)
		service, downloader, resolver, dec := setup(t, "api-key")
		tmp := tmpFileWith(t, "binary")
		downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Return(tmp, nil)
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: 503", perrors.ErrKeyResolution))
		dec.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: flightURL})

		req.ErrorIs(err, perrors.ErrKeyResolution)
		_, err = os.Stat(tmp.Path)
		req.ErrorIs(err, os.ErrNotExist)
	})

	t.Run("decode failure", func(t *testing.T) {
		req := require.New(t)
		service, downloader, resolver, dec := setup(t, "api-key")
		tmp := tmpFileWith(t, "binary")
		downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Return(tmp, nil)
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(keychains, nil)
		dec.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FlightLog{}, fmt.Errorf("unsupported version"))

		_, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: flightURL})

		req.ErrorIs(err, perrors.ErrDecode)
		req.Contains(err.Error(), "unsupported version")
	})

	t.Run("empty result", func(t *testing.T) {
		req := require.New(t)
		service, downloader, resolver, dec := setup(t, "api-key")
		tmp := tmpFileWith(t, "binary")
		downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Return(tmp, nil)
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(keychains, nil)
		dec.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FlightLog{Columns: []string{"OSD.altitude"}}, nil)

		_, err := service.Parse(context.Background(), domain.ParseRequest{InputURL: flightURL})

		req.ErrorIs(err, perrors.ErrEmptyResult)
	})
}

func TestFileName(t *testing.T) {
	req := require.New(t)
	req.Equal("log.txt", fileName("https://host/a/log.txt?sig=1", "tmp"))
	req.Equal("tmp", fileName("https://host", "tmp"))
	req.Equal("tmp", fileName("https://host/", "tmp"))
}
