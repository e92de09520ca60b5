package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/marketplace/internal/config"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestStartAndShutdown() {
	cfg := &config.Config{
		Address:       "127.0.0.1:0",
		LogLvl:        "info",
		JWTSecret:     "test-secret",
		SeedData:      true,
		SweepInterval: 20 * time.Millisecond,
		SweepWorkers:  2,
	}
	ctx, cancel := context.WithCancel(context.Background())

	s.Require().NoError(s.app.start(ctx, cfg))
	s.True(s.app.ready)
	s.NotNil(s.app.repo.SweepRepo)

	time.Sleep(50 * time.Millisecond)
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
