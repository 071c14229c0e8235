// Package visual provides image moderation via an external
// classification API: images are uploaded and the returned per-class
// confidence scores are summarized in to moderation labels.
package visual

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"golang.org/x/time/rate"

	"github.com/moderation-tools/badwords/util"
)

type Client struct {
	Client   http.Client
	Host     string
	ApiToken string

	// optional: caps outbound classification requests
	Limiter *rate.Limiter

	PreScreenClient *PreScreenClient
}

// per-class confidence scores, in the common nested task-output shape
type ClassifyResp struct {
	Status []ClassifyResp_Status `json:"status"`
}

type ClassifyResp_Status struct {
	Response ClassifyResp_Response `json:"response"`
}

type ClassifyResp_Response struct {
	Output []ClassifyResp_Out `json:"output"`
}

type ClassifyResp_Out struct {
	Time    float64              `json:"time"`
	Classes []ClassifyResp_Class `json:"classes"`
}

type ClassifyResp_Class struct {
	Class string  `json:"class"`
	Score float64 `json:"score"`
}

func NewClient(host, token string) Client {
	return Client{
		Client:   *util.RobustHTTPClient(),
		Host:     host,
		ApiToken: token,
	}
}

// ClassifyImage uploads image bytes to the classification API and returns
// summarized moderation labels. The name is only used for the upload form
// and logging.
func (cl *Client) ClassifyImage(ctx context.Context, name string, imgBytes []byte) ([]string, error) {

	if cl.Limiter != nil {
		if err := cl.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if cl.PreScreenClient != nil {
		val, err := cl.PreScreenClient.PreScreenImage(ctx, imgBytes)
		if err != nil {
			slog.Warn("image prescreen request failed", "name", name, "err", err)
		} else if val == "sfw" {
			slog.Debug("prescreen verdict sfw, skipping classification", "name", name)
			preScreenSkipCount.Inc()
			return nil, nil
		}
	}

	slog.Debug("sending image to classifier", "name", name, "size", len(imgBytes))

	// generic HTTP form file upload, then parse the response JSON
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("media", name)
	if err != nil {
		return nil, err
	}
	_, err = part.Write(imgBytes)
	if err != nil {
		return nil, err
	}
	err = writer.Close()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", cl.Host+"/api/v2/task/sync", body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		duration := time.Since(start)
		classifyAPIDuration.Observe(duration.Seconds())
	}()

	req.Header.Set("Authorization", fmt.Sprintf("Token %s", cl.ApiToken))
	req.Header.Add("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "badwords/"+versioninfo.Short())

	req = req.WithContext(ctx)
	res, err := cl.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image classification request failed: %w", err)
	}
	defer res.Body.Close()

	classifyAPICount.WithLabelValues(fmt.Sprint(res.StatusCode)).Inc()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("image classification request failed statusCode=%d", res.StatusCode)
	}

	respBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier resp body: %w", err)
	}

	var respObj ClassifyResp
	if err := json.Unmarshal(respBytes, &respObj); err != nil {
		return nil, fmt.Errorf("failed to parse classifier resp JSON: %w", err)
	}
	slog.Debug("classifier-response", "name", name, "obj", respObj)
	return respObj.SummarizeLabels(), nil
}
