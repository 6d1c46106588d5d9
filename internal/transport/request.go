package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

// ReadBody reads at most maxBytes of the response body and closes it. A body
// larger than maxBytes is an error.
func ReadBody(ctx context.Context, resp *http.Response, maxBytes int64) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	reader := io.Reader(resp.Body)
	if maxBytes > 0 {
		reader = io.LimitReader(resp.Body, maxBytes+1)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}
	if maxBytes > 0 && int64(len(body)) > maxBytes {
		return nil, errors.NewValidationError("body", len(body),
			fmt.Sprintf("response exceeds %d bytes", maxBytes))
	}
	return body, nil
}
