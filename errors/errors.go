package errors

import "fmt"

var (
	ErrMissingAPIKey  = fmt.Errorf("DJI_APP_KEY is not configured, set it to decode logs that need keychains")
	ErrInvalidInput   = fmt.Errorf("invalid input")
	ErrDownload       = fmt.Errorf("unable to download the provided file")
	ErrKeyResolution  = fmt.Errorf("keychain resolution failed")
	ErrDecode         = fmt.Errorf("flight log decoding failed")
	ErrEmptyResult    = fmt.Errorf("flight log contains no records")
	ErrUnauthorized   = fmt.Errorf("invalid or missing bearer token")
	ErrUnknownEncoder = fmt.Errorf("unknown cache entry encoding")
	ErrWorkerPanic    = fmt.Errorf("worker panicked")
)
