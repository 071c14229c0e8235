package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moderation-tools/badwords/engine"
)

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericStatus{Daemon: "badwordsd", Status: "ok"})
}

type checkRequest struct {
	AuthorID  string  `json:"author_id"`
	Handle    string  `json:"handle,omitempty"`
	ID        string  `json:"id,omitempty"`
	Text      string  `json:"text"`
	Threshold float64 `json:"threshold,omitempty"`
}

type matchJSON struct {
	Token string `json:"token"`
	Word  string `json:"word"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type checkResponse struct {
	Detected bool        `json:"detected"`
	Matches  []matchJSON `json:"matches"`
}

// Runs word-list matching over submitted text. If an author is identified,
// the message is also dispatched through the full rule engine.
func (s *Server) handleCheck(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.AuthorID != "" {
		evt := engine.MessageEvent{
			Author: engine.Author{ID: req.AuthorID, Handle: req.Handle},
			ID:     req.ID,
			Text:   req.Text,
		}
		if err := s.engine.ProcessMessage(c.Request().Context(), evt); err != nil {
			return fmt.Errorf("processing message: %w", err)
		}
	}

	matches := s.engine.Profanity.Match(req.Text, req.Threshold)
	resp := checkResponse{
		Detected: len(matches) > 0,
		Matches:  make([]matchJSON, len(matches)),
	}
	for i, m := range matches {
		resp.Matches[i] = matchJSON{Token: m.Token, Word: m.Word, Start: m.Start, End: m.End}
	}
	return c.JSON(http.StatusOK, resp)
}

type censorRequest struct {
	Text      string  `json:"text"`
	Mask      string  `json:"mask,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

type censorResponse struct {
	Text string `json:"text"`
}

func (s *Server) handleCensor(c echo.Context) error {
	var req censorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	var mask rune
	if len(req.Mask) > 0 {
		mask = []rune(req.Mask)[0]
	}
	out := s.engine.Profanity.CensorFuzzy(req.Text, mask, req.Threshold)
	return c.JSON(http.StatusOK, censorResponse{Text: out})
}

type moodRequest struct {
	Text string `json:"text"`
}

type moodResponse struct {
	Label        string  `json:"label"`
	Score        float64 `json:"score"`
	PositiveHits int     `json:"positive_hits"`
	NegativeHits int     `json:"negative_hits"`
	Tokens       int     `json:"tokens"`
}

func (s *Server) handleMood(c echo.Context) error {
	var req moodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res := s.engine.Mood.Analyze(req.Text)
	return c.JSON(http.StatusOK, moodResponse{
		Label:        string(res.Label),
		Score:        res.Score,
		PositiveHits: res.PositiveHits,
		NegativeHits: res.NegativeHits,
		Tokens:       res.Tokens,
	})
}

type imageResponse struct {
	Status string   `json:"status"`
	Flags  []string `json:"flags"`
}

// Accepts a multipart image upload and dispatches it through the image
// rules (classification, caching). Responds with the author's current
// flags so callers can act immediately.
func (s *Server) handleImage(c echo.Context) error {
	authorID := c.FormValue("author_id")
	contentID := c.FormValue("id")
	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing image upload")
	}
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("opening image upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading image upload: %w", err)
	}

	evt := engine.ImageEvent{
		Author:   engine.Author{ID: authorID},
		ID:       contentID,
		MimeType: fh.Header.Get("Content-Type"),
		Bytes:    data,
	}
	if err := s.engine.ProcessImage(c.Request().Context(), evt); err != nil {
		return fmt.Errorf("processing image: %w", err)
	}

	flags, err := s.engine.Flags.Get(c.Request().Context(), authorID)
	if err != nil {
		return fmt.Errorf("reading author flags: %w", err)
	}
	return c.JSON(http.StatusOK, imageResponse{Status: "processed", Flags: flags})
}

func (s *Server) handleDecisions(c echo.Context) error {
	if s.engine.Decisions == nil {
		return echo.NewHTTPError(http.StatusNotFound, "decision log not configured")
	}
	subject := c.Param("subject")
	decisions, err := s.engine.Decisions.BySubject(c.Request().Context(), subject, 100)
	if err != nil {
		return fmt.Errorf("querying decision log: %w", err)
	}
	return c.JSON(http.StatusOK, decisions)
}
