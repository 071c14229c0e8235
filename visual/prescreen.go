package visual

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"
)

// PreScreenClient talks to a fast, cheap sfw/nsfw pre-screening service,
// used to skip full classification for obviously-safe images.
type PreScreenClient struct {
	Host  string
	Token string

	c *http.Client
}

func NewPreScreenClient(host, token string) *PreScreenClient {
	c := &http.Client{
		Timeout: time.Second * 5,
	}

	return &PreScreenClient{
		Host:  host,
		Token: token,
		c:     c,
	}
}

type PreScreenResult struct {
	Result string `json:"result"`
}

func (c *PreScreenClient) PreScreenImage(ctx context.Context, data []byte) (string, error) {
	url := c.Host + "/predict"

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("files", "image")
	if err != nil {
		return "", err
	}

	if _, err := part.Write(data); err != nil {
		return "", err
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out PreScreenResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	return out.Result, nil
}
