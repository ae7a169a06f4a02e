package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/domain"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// JokeSource fetches one random joke.
type JokeSource interface {
	Random(ctx context.Context) (*domain.Joke, error)
}

// HTTPJokeSource calls the public joke API.
type HTTPJokeSource struct {
	url     string
	timeout time.Duration
}

// NewHTTPJokeSource builds a source for url.
func NewHTTPJokeSource(url string, timeout time.Duration) *HTTPJokeSource {
	return &HTTPJokeSource{url: url, timeout: timeout}
}

// Random performs a GET against the joke API.
func (s *HTTPJokeSource) Random(ctx context.Context) (*domain.Joke, error) {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	agent := fiber.Get(s.url).Timeout(timeout)
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if status != fiber.StatusOK {
		return nil, fmt.Errorf("joke api returned status %d", status)
	}

	var joke domain.Joke
	if err := json.Unmarshal(body, &joke); err != nil {
		return nil, fmt.Errorf("decode joke: %w", err)
	}
	return &joke, nil
}

// JokeService proxies the external joke API.
type JokeService struct {
	source JokeSource
	logger *zap.Logger
}

// NewJokeService constructs the service.
func NewJokeService(source JokeSource, logger *zap.Logger) *JokeService {
	return &JokeService{source: source, logger: logger}
}

// Random returns a joke or a generic upstream error.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	joke, err := s.source.Random(ctx)
	if err != nil {
		s.logger.Error("joke api error", zap.Error(err))
		return nil, apperrors.NewUpstreamError("Error fetching joke", err)
	}
	return joke, nil
}
