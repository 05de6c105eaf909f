package matchservice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/selection"
	"go.uber.org/zap"
)

const defaultFileContentType = "application/octet-stream"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status: %s", e.Status)
}

func (c *Client) postFile(ctx context.Context, url string, file *selection.File) ([]MatchResult, error) {
	body, contentType, err := filePayload(file)
	if err != nil {
		return nil, fmt.Errorf("building multipart payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.request(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       logger.TruncateForLog(string(data), c.MaxLogLength),
		}
	}

	results, err := parseResults(data)
	if err != nil {
		c.logger.Debug("unparsable response body",
			zap.String("body", logger.TruncateForLog(string(data), c.MaxLogLength)),
		)
		return nil, err
	}

	c.logger.Debug("got response from matching service", zap.Int("results", len(results)))

	return results, nil
}

// filePayload builds the single-part multipart body carrying the document.
func filePayload(file *selection.File) (io.Reader, string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	contentType := file.MIMEType
	if contentType == "" {
		contentType = defaultFileContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		fileField, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}

	if _, err = io.Copy(part, bytes.NewReader(file.Content)); err != nil {
		return nil, "", err
	}

	if err = w.Close(); err != nil {
		return nil, "", err
	}

	return &b, w.FormDataContentType(), nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
